// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	// 1. Default configuration: idFn should be DefaultIDFn
	if got := newBuilderConfig().idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}

	// 2. WithSymbolIDs should override to SymbolIDFn
	if got := newBuilderConfig(WithSymbolIDs()).idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}

	// 3. WithExcelColumnIDs should override to ExcelColumnIDFn
	if got := newBuilderConfig(WithExcelColumnIDs()).idFn(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}

	// 4. Last option wins
	if got := newBuilderConfig(WithSymbolIDs(), WithSymbNumb("v")).idFn(3); got != "v3" {
		t.Errorf("override order: expected \"v3\", got %q", got)
	}
}

// TestRNGOptions verifies RNG configuration and WithSeed reproducibility.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}

	// 2. WithRand should set rng
	exp := rand.New(rand.NewSource(123))
	if cfg := newBuilderConfig(WithRand(exp)); cfg.rng != exp {
		t.Errorf("WithRand: expected rng %v, got %v", exp, cfg.rng)
	}

	// 3. WithSeed should produce reproducible streams
	c1, c2 := newBuilderConfig(WithSeed(42)), newBuilderConfig(WithSeed(42))
	a1, b1 := c1.rng.Int63(), c1.rng.Int63()
	a2, b2 := c2.rng.Int63(), c2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}
}

// TestWeightFnOptions verifies that weight options apply and override in order.
func TestWeightFnOptions(t *testing.T) {
	t.Parallel()

	const constVal = 9.0
	const min, max = 2.0, 4.0
	rng := rand.New(rand.NewSource(1))

	if w := newBuilderConfig().weightFn(nil); w != DefaultEdgeWeight {
		t.Errorf("default weightFn(nil): expected %g, got %g", DefaultEdgeWeight, w)
	}
	if w := newBuilderConfig(WithConstantWeight(constVal)).weightFn(rng); w != constVal {
		t.Errorf("WithConstantWeight: expected %g, got %g", constVal, w)
	}

	cfg := newBuilderConfig(WithConstantWeight(1), WithUniformWeight(min, max))
	if w := cfg.weightFn(nil); w != DefaultEdgeWeight {
		t.Errorf("WithUniformWeight(nil rng): expected default %g, got %g", DefaultEdgeWeight, w)
	}
	if w := cfg.weightFn(rng); w < min || w >= max {
		t.Errorf("override order: expected uniform in [%g,%g), got %g", min, max, w)
	}
}

// TestLayoutOptions verifies prefix defaults and the outer-face switch.
func TestLayoutOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithPartitionPrefix("", "B"))
	if cfg.leftPrefix != defaultLeftPrefix || cfg.rightPrefix != "B" {
		t.Errorf("prefixes: got %q/%q", cfg.leftPrefix, cfg.rightPrefix)
	}
	if newBuilderConfig().outerFace {
		t.Error("outerFace must default to false")
	}
	if !newBuilderConfig(WithOuterFace()).outerFace {
		t.Error("WithOuterFace: expected true")
	}
}

// TestOptionPanics verifies option constructors reject nil arguments.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithIDScheme(nil)": func() { WithIDScheme(nil) },
		"WithRand(nil)":     func() { WithRand(nil) },
		"WithWeightFn(nil)": func() { WithWeightFn(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
