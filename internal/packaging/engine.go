package packaging

// Engine bundles the taxonomy-dependent computations: summaries, the
// scoreboard, switch notices and insights.
type Engine struct {
	taxonomy Taxonomy
}

// NewEngine returns an Engine bound to the given taxonomy.
func NewEngine(taxonomy Taxonomy) *Engine {
	return &Engine{taxonomy: taxonomy}
}

// Taxonomy returns the taxonomy the engine resolves packaging types with.
func (e *Engine) Taxonomy() Taxonomy {
	return e.taxonomy
}
