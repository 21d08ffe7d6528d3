package particle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hepkit/pdg/pdgid"
)

func TestRegistry_ImplicitDefaultLoad(t *testing.T) {
	reg := New()
	assert.False(t, reg.Loaded())

	p, err := reg.FromPDGID(211)
	require.NoError(t, err)
	assert.Equal(t, "pi+", p.Name())
	assert.True(t, reg.Loaded(), "first query triggers the default load")
	assert.Equal(t, []string{"particles.csv", "nuclei.csv"}, reg.TableNames())
}

func TestRegistry_FromPDGIDErrors(t *testing.T) {
	reg := New()

	_, err := reg.FromPDGID(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidID)

	// 9000111 decodes fine but is not in the bundled table.
	_, err = reg.FromPDGID(9000111)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrInvalidID)
}

func TestRegistry_CanonicalOrder(t *testing.T) {
	reg := New()
	all := reg.All()
	require.NotEmpty(t, all)

	assert.Equal(t, pdgid.PDGID(1), all[0].ID, "the down quark sorts first")
	assert.Equal(t, pdgid.PDGID(-1), all[1].ID, "each antiparticle follows its particle")

	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].sortKey(), all[i].sortKey())
	}
}

const miniTable = `ID,Mass,MassUpper,MassLower,Width,WidthUpper,WidthLower,I,G,P,C,Anti,Charge,Rank,Status,Name,Quarks,Latex
211,140,0,0,2.5e-14,0,0,1,-1,-1,5,2,3,0,0,pi,uD,\pi^{+}
-211,140,0,0,2.5e-14,0,0,1,-1,-1,5,2,-3,0,0,pi,dU,\pi^{-}
`

func TestRegistry_LoadReplace(t *testing.T) {
	reg := New()
	err := reg.Load(strings.NewReader(miniTable), "mini.csv", false)
	require.NoError(t, err)

	assert.Len(t, reg.All(), 2)
	assert.Equal(t, []string{"mini.csv"}, reg.TableNames())

	_, err = reg.FromPDGID(2212)
	assert.ErrorIs(t, err, ErrNotFound, "replace drops the bundled records")
}

func TestRegistry_FailedReplaceLoadKeepsTable(t *testing.T) {
	reg := New()
	before := len(reg.All())
	require.NotZero(t, before)

	err := reg.Load(strings.NewReader("ID,Mass\n211,139\n"), "bad.csv", false)
	require.Error(t, err, "a table missing columns does not parse")

	// The failed load must not be observable: every iterated record is
	// still reachable by identifier and the source list is unchanged.
	assert.Len(t, reg.All(), before)
	assert.Equal(t, []string{"particles.csv", "nuclei.csv"}, reg.TableNames())
	for _, p := range reg.All() {
		got, err := reg.FromPDGID(p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
	}
}

func TestRegistry_LoadAppendOverrides(t *testing.T) {
	reg := New()
	before := len(reg.All())

	err := reg.Load(strings.NewReader(miniTable), "mini.csv", true)
	require.NoError(t, err)

	assert.Len(t, reg.All(), before, "appended rows override by identifier")
	p, err := reg.FromPDGID(211)
	require.NoError(t, err)
	require.NotNil(t, p.Mass)
	assert.Equal(t, 140.0, *p.Mass)

	_, err = reg.FromPDGID(2212)
	assert.NoError(t, err, "append keeps the bundled records")
}

func TestRegistry_AppendOnUnloadedLoadsDefaultFirst(t *testing.T) {
	reg := New()
	err := reg.Load(strings.NewReader(miniTable), "mini.csv", true)
	require.NoError(t, err)

	_, err = reg.FromPDGID(2212)
	assert.NoError(t, err)
	assert.Equal(t, []string{"particles.csv", "nuclei.csv", "mini.csv"}, reg.TableNames())
}

func TestRegistry_FindAll(t *testing.T) {
	reg := New()

	kaons := reg.FindAll(Search{Criteria: Criteria{FieldPDGName: Literal("K")}})
	require.Len(t, kaons, 4, "K0, K0bar, K+ and K-")
	assert.Equal(t, pdgid.PDGID(311), kaons[0].ID)

	neutral := reg.FindAll(Search{
		Sign:     ParticlesOnly,
		Criteria: Criteria{FieldPDGName: Literal("K"), FieldThreeCharge: Literal(0)},
	})
	require.Len(t, neutral, 1)
	assert.Equal(t, pdgid.PDGID(311), neutral[0].ID)
}

func TestRegistry_Find(t *testing.T) {
	reg := New()

	p, err := reg.Find(Search{Criteria: Criteria{FieldQuarks: Literal("uud")}})
	require.NoError(t, err)
	assert.Equal(t, pdgid.PDGID(2212), p.ID)

	_, err = reg.Find(Search{Criteria: Criteria{FieldQuarks: Literal("zzz")}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_IterStopsEarly(t *testing.T) {
	reg := New()
	count := 0
	for range reg.Iter(Search{}) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestRegistry_Invert(t *testing.T) {
	reg := New()

	tests := []struct {
		name string
		id   pdgid.PDGID
		want pdgid.PDGID
	}{
		{"charged pion flips", 211, -211},
		{"negative pion flips back", -211, 211},
		{"neutral pion is its own antiparticle", 111, 111},
		{"barred kaon flips", 311, -311},
		{"electron flips", 11, -11},
		{"photon stays", 22, 22},
		{"barred neutral baryon flips", 3122, -3122},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := reg.FromPDGID(tt.id)
			require.NoError(t, err)
			inv, err := reg.Invert(p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, inv.ID)
		})
	}
}

func TestRegistry_InvertUnknownCharge(t *testing.T) {
	// A charge-inverted record with an unknown charge (code 50) counts
	// as charged and flips to the negated identifier.
	const table = `ID,Mass,MassUpper,MassLower,Width,WidthUpper,WidthLower,I,G,P,C,Anti,Charge,Rank,Status,Name,Quarks,Latex
211,140,0,0,2.5e-14,0,0,1,-1,-1,5,2,50,0,0,pi,uD,\pi^{+}
-211,140,0,0,2.5e-14,0,0,1,-1,-1,5,2,50,0,0,pi,dU,\pi^{-}
`
	reg := New()
	require.NoError(t, reg.Load(strings.NewReader(table), "unknown.csv", false))

	p, err := reg.FromPDGID(211)
	require.NoError(t, err)
	_, ok := p.ThreeCharge()
	require.False(t, ok)

	inv, err := reg.Invert(p)
	require.NoError(t, err)
	assert.Equal(t, pdgid.PDGID(-211), inv.ID)
}

func TestRegistry_FromEvtGenName(t *testing.T) {
	reg := New()

	p, err := reg.FromEvtGenName("mu-")
	require.NoError(t, err)
	assert.Equal(t, pdgid.PDGID(13), p.ID)

	p, err = reg.FromEvtGenName("anti-B0")
	require.NoError(t, err)
	assert.Equal(t, pdgid.PDGID(-511), p.ID)

	_, err = reg.FromEvtGenName("no-such-particle")
	assert.Error(t, err)
}
