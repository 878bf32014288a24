package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-scales-server/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestMemoryStore_Lookups(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	scale, err := store.FindScaleByCode(ctx, "meld")
	require.NoError(t, err)
	require.NotNil(t, scale)
	assert.Equal(t, "meld", scale.CodeName)
	assert.Contains(t, scale.RequiredVariables, "creatinine")

	scale, err = store.FindScaleByCode(ctx, "no_such_scale")
	require.NoError(t, err)
	assert.Nil(t, scale)

	variable, err := store.FindVariableByName(ctx, "creatinine")
	require.NoError(t, err)
	require.NotNil(t, variable)
	assert.Equal(t, domain.NUMERICAL, variable.Kind)
	assert.Equal(t, "mg/dL", variable.StandardUnit)

	variable, err = store.FindVariableByName(ctx, "no_such_variable")
	require.NoError(t, err)
	assert.Nil(t, variable)

	scales, err := store.ListScales(ctx)
	require.NoError(t, err)
	assert.Len(t, scales, 10)
	assert.Equal(t, "calcium_correction", scales[0].CodeName)
}

func TestMemoryStore_SeedConsistency(t *testing.T) {
	// Every variable a seeded scale requires must exist in the variable catalog
	store := NewMemoryStore()
	ctx := context.Background()

	scales, err := store.ListScales(ctx)
	require.NoError(t, err)

	for _, scale := range scales {
		for _, name := range scale.RequiredVariables {
			variable, err := store.FindVariableByName(ctx, name)
			require.NoError(t, err)
			assert.NotNil(t, variable, "scale %s requires undefined variable %s", scale.CodeName, name)
		}
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(NewMemoryStore(), testLogger())

	res := r.Resolve(context.Background(), []string{"meld", "cockcroft_gault", "bogus_scale", "meld"})

	require.Len(t, res.Scales, 2)
	assert.Equal(t, "meld", res.Scales[0].CodeName)
	assert.Equal(t, "cockcroft_gault", res.Scales[1].CodeName)
	assert.Equal(t, []string{"bogus_scale"}, res.Unresolved)

	// creatinine is shared: one definition, required by both scales
	names := make(map[string]int)
	for _, v := range res.Variables {
		names[v.Name]++
	}
	assert.Equal(t, 1, names["creatinine"])
	assert.ElementsMatch(t, []string{"meld", "cockcroft_gault"}, res.RequiredBy["creatinine"])
	assert.Equal(t, []string{"cockcroft_gault"}, res.RequiredBy["weight"])

	// union: dialysis, creatinine, bilirubin, inr, sodium, age, weight, sex
	assert.Len(t, res.Variables, 8)
}

func TestResolver_AllUnresolved(t *testing.T) {
	r := NewResolver(NewMemoryStore(), testLogger())

	res := r.Resolve(context.Background(), []string{"ghost_one", "ghost_two"})
	assert.Empty(t, res.Scales)
	assert.Empty(t, res.Variables)
	assert.Equal(t, []string{"ghost_one", "ghost_two"}, res.Unresolved)
}

// failingStore simulates a degraded catalog backend
type failingStore struct{}

func (f *failingStore) FindScaleByCode(context.Context, string) (*domain.ScaleDefinition, error) {
	return nil, errors.New("backend unavailable")
}

func (f *failingStore) FindVariableByName(context.Context, string) (*domain.VariableDefinition, error) {
	return nil, errors.New("backend unavailable")
}

func (f *failingStore) ListScales(context.Context) ([]domain.ScaleDefinition, error) {
	return nil, errors.New("backend unavailable")
}

func TestResolver_StoreFailureIsTreatedAsMiss(t *testing.T) {
	r := NewResolver(&failingStore{}, testLogger())

	res := r.Resolve(context.Background(), []string{"meld"})
	assert.Empty(t, res.Scales)
	assert.Equal(t, []string{"meld"}, res.Unresolved)
}
