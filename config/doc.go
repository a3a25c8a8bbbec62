// Package config loads a descent scenario from YAML.
//
// A scenario is stated in physical units: a square of side Extent metres
// divided into Resolution grid units, with start and end positions in
// metres. Params converts it into descent.Params, rejecting positions that
// do not fall on a grid node instead of truncating them.
//
//	extent: 10
//	resolution: 50
//	start: {x: 0, y: 10}
//	end:   {x: 10, y: 0}
//	workers: 4
package config
