package entity

// Grupos y factores RH válidos. Las 8 combinaciones se siembran una vez y
// nunca se mutan (tabla de referencia).
const (
	BloodGroupA  = "A"
	BloodGroupB  = "B"
	BloodGroupAB = "AB"
	BloodGroupO  = "O"

	RHFactorPositive = "+"
	RHFactorNegative = "-"
)

// BloodGroups lista los grupos válidos en orden de siembra.
var BloodGroups = []string{BloodGroupA, BloodGroupB, BloodGroupAB, BloodGroupO}

// RHFactors lista los factores RH válidos.
var RHFactors = []string{RHFactorPositive, RHFactorNegative}

// Blood es un tipo de sangre: grupo {A,B,AB,O} × factor {+,-}. Referenciado
// por Donor, Request y BloodBag.
type Blood struct {
	ID       string
	Group    string
	RHFactor string
}

// Label devuelve la representación usual del tipo ("O+", "AB-").
func (b Blood) Label() string {
	return b.Group + b.RHFactor
}
