package hybridvec

// AddInPlace adds other elementwise into v. Codes wrap on overflow.
func (v *Vector[F, Q]) AddInPlace(other *Vector[F, Q]) error {
	if err := v.checkDims(other); err != nil {
		return err
	}
	for i := range v.exact {
		v.exact[i] += other.exact[i]
		v.codes[i] += other.codes[i]
	}
	return nil
}

// SubInPlace subtracts other elementwise from v. Codes wrap on underflow.
func (v *Vector[F, Q]) SubInPlace(other *Vector[F, Q]) error {
	if err := v.checkDims(other); err != nil {
		return err
	}
	for i := range v.exact {
		v.exact[i] -= other.exact[i]
		v.codes[i] -= other.codes[i]
	}
	return nil
}

// MulInPlace multiplies v by other elementwise. Codes keep the low bits of
// the product.
func (v *Vector[F, Q]) MulInPlace(other *Vector[F, Q]) error {
	if err := v.checkDims(other); err != nil {
		return err
	}
	for i := range v.exact {
		v.exact[i] *= other.exact[i]
		v.codes[i] *= other.codes[i]
	}
	return nil
}

// Add returns v + other as a new vector carrying v's quantization parameters.
func (v *Vector[F, Q]) Add(other *Vector[F, Q]) (*Vector[F, Q], error) {
	return v.apply(other, (*Vector[F, Q]).AddInPlace)
}

// Sub returns v - other as a new vector carrying v's quantization parameters.
func (v *Vector[F, Q]) Sub(other *Vector[F, Q]) (*Vector[F, Q], error) {
	return v.apply(other, (*Vector[F, Q]).SubInPlace)
}

// Mul returns v * other as a new vector carrying v's quantization parameters.
func (v *Vector[F, Q]) Mul(other *Vector[F, Q]) (*Vector[F, Q], error) {
	return v.apply(other, (*Vector[F, Q]).MulInPlace)
}

func (v *Vector[F, Q]) apply(other *Vector[F, Q], op func(*Vector[F, Q], *Vector[F, Q]) error) (*Vector[F, Q], error) {
	if err := v.checkDims(other); err != nil {
		return nil, err
	}
	out := v.Clone()
	if err := op(out, other); err != nil {
		return nil, err
	}
	return out, nil
}
