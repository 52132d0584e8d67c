// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package melast

// Calc_K_from_Enu returns the bulk modulus
func Calc_K_from_Enu(E, ν float64) float64 {
	return E / (3.0 * (1.0 - 2.0*ν))
}

// Calc_G_from_Enu returns the shear modulus
func Calc_G_from_Enu(E, ν float64) float64 {
	return E / (2.0 * (1.0 + ν))
}

// Calc_E_from_KG returns Young's modulus
func Calc_E_from_KG(K, G float64) float64 {
	return 9.0 * K * G / (3.0*K + G)
}

// Calc_nu_from_KG returns Poisson's ratio
func Calc_nu_from_KG(K, G float64) float64 {
	return (3.0*K - 2.0*G) / (6.0*K + 2.0*G)
}

// ZenerA returns Zener's anisotropy ratio for cubic moduli (Voigt c44)
func ZenerA(c11, c12, c44 float64) float64 {
	return 2.0 * c44 / (c11 - c12)
}
