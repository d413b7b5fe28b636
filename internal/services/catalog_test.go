package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/nrlgen/internal/barrier"
)

func TestCatalog_Names(t *testing.T) {
	assert.Equal(t, []string{
		NameMgenSink,
		NameNHDP,
		NameOLSR,
		NameOLSROrg,
		NameOLSRv2,
		NameSMF,
		NameMgenActor,
		NameArouted,
	}, Default().Names())
}

func TestCatalog_StartIndices(t *testing.T) {
	tests := map[string]int{
		NameMgenSink:  5,
		NameNHDP:      45,
		NameSMF:       45,
		NameOLSR:      45,
		NameOLSRv2:    45,
		NameOLSROrg:   45,
		NameMgenActor: 50,
		NameArouted:   55,
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			d := mustGet(t, Default(), name).Descriptor()
			assert.Equal(t, want, d.StartIndex)
			assert.Equal(t, Group, d.Group)
			assert.Equal(t, name, d.Name)
		})
	}
}

func TestCatalog_Get_Unknown(t *testing.T) {
	_, err := Default().Get("quagga")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownService)
	assert.Contains(t, err.Error(), "quagga")

	assert.False(t, Default().Has("quagga"))
	assert.True(t, Default().Has(NameSMF))
}

func TestCatalog_ZebraIsNotGenerated(t *testing.T) {
	assert.False(t, Default().Has(NameZebra))

	list := Default().Enabled(NewEnabledSet(NameArouted, NameZebra, NameSMF, NameMgenSink))

	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s.Descriptor().Name)
	}
	assert.Equal(t, []string{NameMgenSink, NameSMF, NameArouted}, names)
}

func TestCatalog_EnabledEmpty(t *testing.T) {
	assert.Empty(t, Default().Enabled(nil))
	assert.Empty(t, Default().Enabled(NewEnabledSet()))
}

func TestCatalog_ZeroPrefixLenFallsBack(t *testing.T) {
	opts := DefaultOptions()
	opts.PrefixLen = 0
	c := NewCatalog(opts)

	cfg := mustGet(t, c, NameSMF).Config(testNode(), smfScript, NewEnabledSet(NameSMF, NameArouted))
	assert.Contains(t, cfg, "unicast 10.0.0.0/24")
}

func TestCatalog_InvalidBarrierFallsBack(t *testing.T) {
	for _, b := range []barrier.Barrier{{}, {Attempts: -1, Interval: time.Millisecond}, {Attempts: 3, Interval: -time.Second}} {
		c := NewCatalog(Options{Barrier: b, PrefixLen: 24})

		cfg := mustGet(t, c, NameArouted).Config(testNode(), aroutedScript, NewEnabledSet(NameSMF, NameArouted))
		assert.Contains(t, cfg, "if [ $count -eq 10 ]; then")
		assert.Contains(t, cfg, "sleep 0.1\n")
		assert.Contains(t, cfg, "# waits up to 1s for the SMF pipe")
	}
}

func TestCatalog_CustomPrefixLen(t *testing.T) {
	opts := DefaultOptions()
	opts.PrefixLen = 16
	c := NewCatalog(opts)

	cfg := mustGet(t, c, NameArouted).Config(testNode(), aroutedScript, NewEnabledSet(NameSMF, NameArouted))
	assert.Contains(t, cfg, "ip route add 10.0.0.0/16 dev lo")
}

func TestDescriptor_IsImmutable(t *testing.T) {
	s := mustGet(t, Default(), NameOLSROrg)

	d := s.Descriptor()
	d.Dirs[0] = "/tmp/elsewhere"
	d.Configs = append(d.Configs, "extra.conf")
	d.StartIndex = 1

	fresh := s.Descriptor()
	assert.Equal(t, []string{"/etc/olsrd"}, fresh.Dirs)
	assert.Equal(t, []string{"/etc/olsrd/olsrd.conf"}, fresh.Configs)
	assert.Equal(t, DefaultStartIndex, fresh.StartIndex)
}

func TestDescriptor_HasConfig(t *testing.T) {
	d := mustGet(t, Default(), NameSMF).Descriptor()

	assert.True(t, d.HasConfig("startsmf.sh"))
	assert.False(t, d.HasConfig("olsrd.conf"))
}

func TestTemplateContext(t *testing.T) {
	ctx := NewTemplateContext(testNode())

	assert.Equal(t, "n1_smf", ctx.Substitute(smfPipe))
	assert.Equal(t, "/tmp/mgen_n1.log n1", ctx.Substitute("/tmp/mgen_{{NODE}}.log {{NODE}}"))
	assert.Nil(t, ctx.SubstituteAll(nil))
}

func TestFirstMatch_RuleOrderWins(t *testing.T) {
	rules := []rule{{peer: "a", value: "1"}, {peer: "b", value: "2"}}

	r, ok := firstMatch(NewEnabledSet("b", "a"), rules)
	require.True(t, ok)
	assert.Equal(t, "1", r.value)

	_, ok = firstMatch(NewEnabledSet("c"), rules)
	assert.False(t, ok)
}

func TestCatalog_ConcurrentUse(t *testing.T) {
	c := Default()
	enabled := NewEnabledSet(NameSMF, NameNHDP, NameArouted)
	want := mustGet(t, c, NameSMF).Config(testNode(), smfScript, enabled)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, _ := c.Get(NameSMF)
			results[i] = s.Config(testNode(), smfScript, enabled)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
