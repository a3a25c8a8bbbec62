// Package export turns an extracted descent path into the forms its
// consumers need: CSV rows, physical-length polylines and segments for
// drawing, GeoJSON, and a spatial index for nearest-sample lookups.
//
// Grid coordinates are multiplied by the solve's scale to obtain physical
// coordinates; time-to-go values are carried unchanged.
package export
