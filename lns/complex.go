package lns

import "strings"

// Complex is a complex number with lns parts.
type Complex[S Shape] struct {
	Re, Im LNS[S]
}

// NewComplex returns re + im*i.
func NewComplex[S Shape](re, im LNS[S]) Complex[S] {
	return Complex[S]{Re: re, Im: im}
}

// FromComplex128 returns the complex number nearest to z, part by part.
func FromComplex128[S Shape](z complex128) Complex[S] {
	return Complex[S]{Re: FromFloat64[S](real(z)), Im: FromFloat64[S](imag(z))}
}

// Real returns the real part of z.
func (z Complex[S]) Real() LNS[S] {
	return z.Re
}

// Imag returns the imaginary part of z.
func (z Complex[S]) Imag() LNS[S] {
	return z.Im
}

// Conj returns the complex conjugate of z.
func (z Complex[S]) Conj() Complex[S] {
	return Complex[S]{Re: z.Re, Im: z.Im.Neg()}
}

// Add returns z+w.
func (z Complex[S]) Add(w Complex[S]) Complex[S] {
	return Complex[S]{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)}
}

// Sub returns z-w.
func (z Complex[S]) Sub(w Complex[S]) Complex[S] {
	return Complex[S]{Re: z.Re.Sub(w.Re), Im: z.Im.Sub(w.Im)}
}

// Mul returns z*w.
func (z Complex[S]) Mul(w Complex[S]) Complex[S] {
	return Complex[S]{
		Re: z.Re.Mul(w.Re).Sub(z.Im.Mul(w.Im)),
		Im: z.Re.Mul(w.Im).Add(z.Im.Mul(w.Re)),
	}
}

// IsNaR reports whether any part of z is NaR.
func (z Complex[S]) IsNaR() bool {
	return z.Re.IsNaR() || z.Im.IsNaR()
}

// Complex128 returns z as a complex128.
func (z Complex[S]) Complex128() complex128 {
	return complex(z.Re.Float64(), z.Im.Float64())
}

func (z Complex[S]) String() string {
	im := z.Im.String()
	if !strings.HasPrefix(im, "-") {
		im = "+" + im
	}
	return "(" + z.Re.String() + im + "i)"
}
