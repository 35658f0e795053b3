package composer

import (
	"sort"

	"github.com/alexanderramin/uniprompt/internal/domain"
)

// Recipe is the ordered list of blocks composed for one assignment type.
type Recipe []BlockKind

// DefaultRecipeKey is the recipe used for assignment types without their own entry.
const DefaultRecipeKey = "default"

// ChainOfThought appears in every recipe; the block itself decides whether
// the assignment type warrants it.
var recipes = map[string]Recipe{
	DefaultRecipeKey: {
		BlockHeader, BlockPersona, BlockTaskDefinition, BlockChainOfThought,
		BlockCoreInstructions, BlockSourceHandling, BlockSelfCorrection, BlockMetaInstructions,
	},
	string(domain.AssignmentBrainstorming): {
		BlockHeader, BlockPersona, BlockTaskDefinition, BlockChainOfThought,
		BlockCoreInstructions, BlockMetaInstructions,
	},
	string(domain.AssignmentProofreading): {
		BlockHeader, BlockPersona, BlockTaskDefinition, BlockChainOfThought,
		BlockCoreInstructions, BlockSelfCorrection, BlockMetaInstructions,
	},
}

// SelectRecipe returns the blocks for an assignment type key, falling back to
// the default recipe. Meta instructions are dropped when disabled.
// The returned slice is owned by the caller.
func (c *Composer) SelectRecipe(key string) Recipe {
	base, ok := recipes[key]
	if !ok {
		base = recipes[DefaultRecipeKey]
	}

	out := make(Recipe, 0, len(base))
	for _, kind := range base {
		if kind == BlockMetaInstructions && !c.opts.MetaInstructions {
			continue
		}
		out = append(out, kind)
	}
	return out
}

// Names returns the block names of r, for display.
func (r Recipe) Names() []string {
	names := make([]string, len(r))
	for i, k := range r {
		names[i] = k.String()
	}
	return names
}

// RecipeKeys lists the assignment types with a recipe of their own, sorted,
// with DefaultRecipeKey first.
func RecipeKeys() []string {
	keys := make([]string, 0, len(recipes))
	for k := range recipes {
		if k != DefaultRecipeKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return append([]string{DefaultRecipeKey}, keys...)
}
