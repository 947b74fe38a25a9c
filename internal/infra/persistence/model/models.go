package model

// All lists every persisted model. Used by cmd/gen and by tests that build a
// schema without running SQL migrations.
func All() []any {
	return []any{
		&CustomerModel{},
		&ActivityModel{},
		&ProductModel{},
		&OperatorModel{},
		&StageTransitionModel{},
	}
}
