// Package services describes the NRL MANET daemons an emulated node can run
// and resolves, per node, how each one must be launched.
//
// Every daemon kind is a Service: an immutable Descriptor plus two pure
// functions of (node, enabled services) that render the startup command
// tuple and the generated config files. Daemons that are meant to
// interoperate consult the EnabledSet to pick compatible options:
//
//   - SMF picks its flooding algorithm from the co-resident routing protocol
//     (NHDP -> ecds, OLSR -> smpr, otherwise cf) and exposes a tap device
//     when arouted is enabled.
//   - NHDP, OLSR and OLSRv2 attach to SMF's per-node pipe when SMF is enabled.
//   - arouted waits, through a barrier preamble, for SMF's pipe to exist.
//
// The Catalog is built once and is safe for concurrent use.
package services
