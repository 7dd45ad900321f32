package gravflow

// Params gravity-flow scenario parameters
type Params struct {
	A, B, C float64 // distance-decay threshold coefficients: T = a·L^b − c, L in km
	P       float64 // MFD dispersal exponent; zero takes the default
}

// Freeman (1991) multiple-flow-direction convention
const defaultP = 1.1

func (p Params) exp() float64 {
	if p.P == 0. {
		return defaultP
	}
	return p.P
}

// Result per-cell outputs, flat row-major in the shape of the input DEM
type Result struct {
	Influence []float64 // dispersed unit source weight
	FlowMap   []int32   // 0/1, largest connected flow region
	Nr, Nc    int
}
