// Package stereoconv converts local stereographic plane coordinates,
// measured in meters from a reference point, to geodetic latitude and
// longitude using a double (Gauss-Schreiber) conformal projection.
package stereoconv
