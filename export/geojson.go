package export

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
)

// FeatureCollection builds a GeoJSON collection holding the route as a
// LineString feature (properties "duration" and "length") followed by one
// Point feature per step (properties "stage" and "time_to_go") and one for
// the goal. Extra properties are copied onto the LineString feature.
func FeatureCollection(r Route, extra map[string]interface{}) (*geojson.FeatureCollection, error) {
	if r.Empty() {
		return nil, ErrEmptyRoute
	}
	fc := geojson.NewFeatureCollection()

	line := geojson.NewFeature(r.LineString())
	for k, v := range extra {
		line.Properties[k] = v
	}
	line.Properties["duration"] = r.Duration()
	line.Properties["length"] = r.Length()
	fc.Append(line)

	for _, st := range r.Steps {
		f := geojson.NewFeature(r.Physical(st.Pos))
		f.Properties["stage"] = st.Stage
		f.Properties["time_to_go"] = st.TimeToGo
		fc.Append(f)
	}

	goal := geojson.NewFeature(r.Physical(r.Goal))
	goal.Properties["stage"] = r.Steps[len(r.Steps)-1].Stage + 1
	goal.Properties["time_to_go"] = 0.0
	goal.Properties["goal"] = true
	fc.Append(goal)

	return fc, nil
}

// GeoJSON marshals FeatureCollection(r, extra).
func GeoJSON(r Route, extra map[string]interface{}) ([]byte, error) {
	fc, err := FeatureCollection(r, extra)
	if err != nil {
		return nil, err
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("export: geojson: %w", err)
	}

	return data, nil
}
