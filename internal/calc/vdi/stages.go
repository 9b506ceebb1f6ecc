package vdi

import "math"

// ConeHalfAngleDeg is the substitute-cone half-angle of the clamped-parts
// resilience model (VDI 2230).
const ConeHalfAngleDeg = 33.0

var tanCone = math.Tan(ConeHalfAngleDeg * math.Pi / 180.0)

// EccentricLoadingFactor is PhiN = 1 - (dW/dA)^n. The exponent n selects the
// load-introduction model (1 uniform pressure, 4-8 empirical bending); its
// engineering appropriateness is the caller's call.
func EccentricLoadingFactor(n, dA, dW float64) (float64, error) {
	if dW <= 0 {
		return 0, errGeometry(StageGeometry, "dW", "bearing diameter dW=%g must be positive", dW)
	}
	if dA <= dW {
		return 0, errGeometry(StageGeometry, "dA", "load-introduction diameter dA=%g must exceed bearing diameter dW=%g", dA, dW)
	}
	return 1.0 - math.Pow(dW/dA, n), nil
}

// BoltResilience is deltaBolt = lK / (As * EB), mm/N.
func BoltResilience(lK, as, eB float64) (float64, error) {
	if as <= 0 {
		return 0, errGeometry(StageResilience, "As", "stress area As=%g must be positive", as)
	}
	if eB <= 0 {
		return 0, errGeometry(StageResilience, "E_B", "bolt modulus E_B=%g must be positive", eB)
	}
	if lK <= 0 {
		return 0, errGeometry(StageResilience, "lK", "clamped length lK=%g must be positive", lK)
	}
	return lK / (as * eB), nil
}

// ClampedPartsResilience approximates the clamped-parts resilience with the
// 33-degree substitute cone:
//
//	DA = dW + lK*tan(33)
//	deltaP = (lK/EP) * ln[(DA^2+dW^2-dh^2)/(DA^2-dW^2+dh^2)] / (pi*dW)
//
// The logarithm argument must stay strictly positive and above one (a hole
// larger than the effective cone makes it collapse); such geometry is
// rejected instead of letting the log go NaN or the resilience negative.
func ClampedPartsResilience(lK, dW, dh, eP float64) (float64, error) {
	if lK <= 0 {
		return 0, errGeometry(StageResilience, "lK", "clamped length lK=%g must be positive", lK)
	}
	if eP <= 0 {
		return 0, errGeometry(StageResilience, "E_P", "clamped-part modulus E_P=%g must be positive", eP)
	}
	if dh <= 0 || dW <= 0 {
		return 0, errGeometry(StageResilience, "dW/dh", "bearing dW=%g and hole dh=%g must be positive", dW, dh)
	}
	dA := dW + lK*tanCone
	num := dA*dA + dW*dW - dh*dh
	den := dA*dA - dW*dW + dh*dh
	if num <= 0 || den <= 0 || num <= den {
		return 0, errGeometry(StageResilience, "dh",
			"hole dh=%g too large for bearing dW=%g over lK=%g: substitute-cone log argument non-positive", dh, dW, lK)
	}
	return lK / eP * math.Log(num/den) / (math.Pi * dW), nil
}

// LoadFactor is Phi = deltaBolt / (deltaBolt + deltaP), strictly in (0,1)
// for positive resiliences.
func LoadFactor(deltaBolt, deltaP float64) (float64, error) {
	if deltaBolt <= 0 || deltaP <= 0 {
		return 0, errLoadFactor(StageLoadFactor, "deltaBolt/deltaP", "resiliences must be positive, got %g and %g", deltaBolt, deltaP)
	}
	return deltaBolt / (deltaBolt + deltaP), nil
}

// EmbeddingLoss is the preload lost to surface settling, fZ/(deltaBolt+deltaP).
func EmbeddingLoss(fZ, deltaBolt, deltaP float64) (float64, error) {
	if fZ < 0 {
		return 0, errLoadCase(StagePreload, "fZ", "embedding amount fZ=%g cannot be negative", fZ)
	}
	if deltaBolt+deltaP <= 0 {
		return 0, errLoadFactor(StagePreload, "deltaBolt/deltaP", "total resilience must be positive")
	}
	return fZ / (deltaBolt + deltaP), nil
}

// MinimumPreload is FVmin = (FA+FZ) / (n*(1-Phi)). Phi=1 means a fully
// flexible joint where no finite preload retains clamp.
func MinimumPreload(fA, fZ, phi float64, nInterfaces int) (float64, error) {
	if nInterfaces < 1 {
		return 0, errLoadCase(StagePreload, "n_interfaces", "interface count %d must be at least 1", nInterfaces)
	}
	if phi < 0 || phi >= 1 {
		return 0, errLoadFactor(StagePreload, "Phi", "load factor Phi=%g must lie in [0,1)", phi)
	}
	return (fA + fZ) / (float64(nInterfaces) * (1.0 - phi)), nil
}

// AssemblyPreload adds the thermal correction to the tabulated preload:
//
//	FV = FMTab + (alphaP-alphaA)*deltaT*lK / (deltaBolt+deltaP)
//
// The thermal term may legitimately be negative and is never clamped.
func AssemblyPreload(fMTab, alphaA, alphaP, deltaT, lK, deltaBolt, deltaP float64) (float64, error) {
	if deltaBolt+deltaP <= 0 {
		return 0, errLoadFactor(StagePreload, "deltaBolt/deltaP", "total resilience must be positive")
	}
	return fMTab + (alphaP-alphaA)*deltaT*lK/(deltaBolt+deltaP), nil
}

// BoltForceWorking is FSB = FV + Phi*FA.
func BoltForceWorking(fV, fA, phi float64) float64 {
	return fV + phi*fA
}

// ClampingForceWorking is FKB = FV - (1-Phi)*FA. A non-positive result means
// the joint has lost clamp under operating load; the caller reports that as
// a warning, not an error, so failing designs still get full numbers.
func ClampingForceWorking(fV, fA, phi float64) float64 {
	return fV - (1.0-phi)*fA
}

// BoltStress is sigma = FSB/As, MPa.
func BoltStress(fSB, as float64) (float64, error) {
	if as <= 0 {
		return 0, errGeometry(StageStress, "As", "stress area As=%g must be positive", as)
	}
	return fSB / as, nil
}

// UtilizationFactor returns sigma/Rp02 and its three-way classification.
// Below 0.9 is acceptable for static loads.
func UtilizationFactor(sigma, rp02 float64) (float64, Verdict, error) {
	if rp02 <= 0 {
		return 0, "", errLoadCase(StageStress, "Rp02", "yield strength Rp02=%g must be positive", rp02)
	}
	u := sigma / rp02
	switch {
	case u >= 1.0:
		return u, VerdictOverload, nil
	case u >= 0.9:
		return u, VerdictMarginal, nil
	default:
		return u, VerdictOK, nil
	}
}

// SurfaceCriterion evaluates the combined tensile+shear interaction on the
// nominal section:
//
//	tensile = [ (Fclamp+Fz)*4/(pi*d^2) / basis ]^2
//	shear   = [ sqrt(Fx^2+Fy^2)*4/(pi*d^2) / (0.577*basis) ]^2
//
// The joint fails the check when tensile+shear exceeds 1. Independent of the
// utilization factor; a design can pass one and fail the other.
func SurfaceCriterion(fx, fy, fz, fClamp, d float64, basis SurfaceBasis, rm, rp02 float64) (SurfaceResult, error) {
	if d <= 0 {
		return SurfaceResult{}, errGeometry(StageStress, "d", "nominal diameter d=%g must be positive", d)
	}
	var strength float64
	switch basis {
	case BasisYield:
		strength = rp02
	case BasisUTS, "":
		basis = BasisUTS
		strength = rm
	default:
		return SurfaceResult{}, errLoadCase(StageStress, "basis", "unknown strength basis %q", basis)
	}
	if strength <= 0 {
		return SurfaceResult{}, errLoadCase(StageStress, "Rm/Rp02", "strength basis value %g must be positive", strength)
	}

	area := math.Pi * d * d / 4.0
	tensile := math.Pow((fClamp+fz)/area/strength, 2)
	shear := math.Pow(math.Hypot(fx, fy)/area/(0.577*strength), 2)
	combined := tensile + shear
	return SurfaceResult{
		TensileRatio: tensile,
		ShearRatio:   shear,
		Combined:     combined,
		Basis:        basis,
		OK:           combined <= 1.0,
	}, nil
}
