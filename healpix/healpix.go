// Package healpix maps sky coordinates onto the HEALPix tessellation of the
// sphere, RING ordering.
//
// HEALPix divides the sphere into 12*nside^2 curvilinear quadrilaterals of
// exactly equal area. The "resolution" reported by a Grid is the mean pixel
// spacing sqrt(4*pi/npix); pixel edge lengths vary with latitude, the equal
// AREA of every pixel is the invariant callers may rely on.
//
// All functions are pure float64 math over an immutable Grid value; a Grid is
// safe to share across goroutines.
package healpix

import (
	"math"

	"github.com/starhash/starhash/errors"
)

// MaxNside bounds nside so that npix = 12*nside^2 stays well inside int64.
const MaxNside = 1 << 29

const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
	twoPi    = 2.0 * math.Pi
	halfPi   = math.Pi / 2.0
)

// Grid is a HEALPix grid at a fixed nside, RING pixel ordering.
// The zero value is not usable; construct with NewGrid.
type Grid struct {
	nside int64
	npix  int64
	ncap  int64 // pixels in the north polar cap: 2*nside*(nside-1)
}

// NewGrid returns a Grid for the given nside. nside must be a power of two
// in [1, MaxNside].
func NewGrid(nside int64) (Grid, error) {
	if nside < 1 || nside > MaxNside || nside&(nside-1) != 0 {
		return Grid{}, errors.Newf("nside must be a power of two in [1, %d], got %d", MaxNside, nside)
	}
	return Grid{
		nside: nside,
		npix:  12 * nside * nside,
		ncap:  2 * nside * (nside - 1),
	}, nil
}

// Nside returns the grid's nside parameter.
func (g Grid) Nside() int64 { return g.nside }

// Npix returns the total pixel count 12*nside^2.
func (g Grid) Npix() int64 { return g.npix }

// Resolution returns the mean pixel spacing sqrt(4*pi/npix) in arcminutes.
func (g Grid) Resolution() float64 {
	return math.Sqrt(math.Pi/3.0) / float64(g.nside) * radToDeg * 60.0
}

// ResolutionArcsec returns the mean pixel spacing in arcseconds.
func (g Grid) ResolutionArcsec() float64 {
	return g.Resolution() * 60.0
}

// Ang2Pix returns the RING index of the pixel containing (lon, lat), both in
// degrees. Longitude outside [0, 360) is normalized; latitude outside
// [-90, 90] or any non-finite input yields ErrInvalidCoordinate.
func (g Grid) Ang2Pix(lon, lat float64) (int64, error) {
	if math.IsNaN(lon) || math.IsInf(lon, 0) || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return 0, errors.NewInvalidCoordinateError("non-finite coordinate (%v, %v)", lon, lat)
	}
	if lat < -90.0 || lat > 90.0 {
		return 0, errors.NewInvalidCoordinateError("latitude %v outside [-90, 90]", lat)
	}

	lon = math.Mod(lon, 360.0)
	if lon < 0 {
		lon += 360.0
	}

	z := math.Sin(lat * degToRad)
	phi := lon * degToRad
	return g.zphi2pix(z, phi), nil
}

// Pix2Ang returns the (lon, lat) of the center of pixel pix, in degrees with
// lon in [0, 360). pix outside [0, Npix) yields ErrPixelOutOfRange.
func (g Grid) Pix2Ang(pix int64) (lon, lat float64, err error) {
	if pix < 0 || pix >= g.npix {
		return 0, 0, errors.Wrapf(errors.ErrPixelOutOfRange, "pixel %d not in [0, %d)", pix, g.npix)
	}

	z, phi := g.pix2zphi(pix)

	lon = math.Mod(phi*radToDeg, 360.0)
	if lon < 0 {
		lon += 360.0
	}
	lat = math.Asin(z) * radToDeg
	return lon, lat, nil
}

// zphi2pix is the RING-scheme ang2pix kernel on (z = sin(lat), phi in rad).
func (g Grid) zphi2pix(z, phi float64) int64 {
	nside := g.nside
	za := math.Abs(z)
	tt := math.Mod(phi, twoPi) / halfPi // in [0, 4)
	if tt < 0 {
		tt += 4.0
	}

	if za <= 2.0/3.0 {
		// Equatorial region: pixel boundaries are straight lines in (tt, z)
		temp1 := float64(nside) * (0.5 + tt)
		temp2 := float64(nside) * z * 0.75
		jp := int64(temp1 - temp2) // ascending edge line
		jm := int64(temp1 + temp2) // descending edge line

		ir := nside + 1 + jp - jm // ring counted from z = 2/3, in [1, 2*nside+1]
		kshift := 1 - (ir & 1)    // 1 on even rings

		ip := (jp + jm - nside + kshift + 1) / 2
		ip %= 4 * nside
		if ip < 0 {
			ip += 4 * nside
		}

		return g.ncap + (ir-1)*4*nside + ip
	}

	// Polar caps
	tp := tt - math.Floor(tt)
	tmp := float64(nside) * math.Sqrt(3.0*(1.0-za))
	jp := int64(tp * tmp)
	jm := int64((1.0 - tp) * tmp)

	ir := jp + jm + 1 // ring counted from the pole
	ip := int64(tt * float64(ir))
	ip %= 4 * ir
	if ip < 0 {
		ip += 4 * ir
	}

	if z > 0 {
		return 2*ir*(ir-1) + ip
	}
	return g.npix - 2*ir*(ir+1) + ip
}

// pix2zphi is the RING-scheme pix2ang kernel, returning the pixel center as
// (z = sin(lat), phi in rad).
func (g Grid) pix2zphi(pix int64) (z, phi float64) {
	nside := g.nside

	if pix < g.ncap {
		// North polar cap
		ip := pix + 1
		hip := float64(ip) * 0.5
		fihip := math.Floor(hip)
		iring := int64(math.Sqrt(hip-math.Sqrt(fihip))) + 1
		iphi := ip - 2*iring*(iring-1)

		z = 1.0 - float64(iring*iring)/(3.0*float64(nside*nside))
		phi = (float64(iphi) - 0.5) * halfPi / float64(iring)
		return z, phi
	}

	if pix < g.npix-g.ncap {
		// Equatorial region
		ip := pix - g.ncap
		iring := ip/(4*nside) + nside
		iphi := ip%(4*nside) + 1

		// Odd rings are shifted by half a pixel in phi
		fodd := 0.5 * (1.0 + float64((iring+nside)&1))

		z = float64(2*nside-iring) * 2.0 / (3.0 * float64(nside))
		phi = (float64(iphi) - fodd) * halfPi / float64(nside)
		return z, phi
	}

	// South polar cap
	ip := g.npix - pix
	hip := float64(ip) * 0.5
	fihip := math.Floor(hip)
	iring := int64(math.Sqrt(hip-math.Sqrt(fihip))) + 1
	iphi := 4*iring + 1 - (ip - 2*iring*(iring-1))

	z = -1.0 + float64(iring*iring)/(3.0*float64(nside*nside))
	phi = (float64(iphi) - 0.5) * halfPi / float64(iring)
	return z, phi
}
