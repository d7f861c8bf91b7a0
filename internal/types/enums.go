package types

type ConstraintOp string

const (
	ConstraintOpNone ConstraintOp = ""
	ConstraintOpEq   ConstraintOp = "="
	ConstraintOpEq2  ConstraintOp = "=="
	ConstraintOpNe   ConstraintOp = "!="
	ConstraintOpGte  ConstraintOp = ">="
	ConstraintOpLte  ConstraintOp = "<="
	ConstraintOpGt   ConstraintOp = ">"
	ConstraintOpLt   ConstraintOp = "<"
)

type Stability string

const (
	StabilityDev    Stability = "dev"
	StabilityAlpha  Stability = "alpha"
	StabilityBeta   Stability = "beta"
	StabilityRC     Stability = "RC"
	StabilityStable Stability = "stable"
)
