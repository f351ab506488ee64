package filter

import (
	"encoding/json"
	"fmt"
)

// The wire format uses snake_case keys distinct from the Go API naming:
// Radius serializes as "radius", TopLeft as "top_left", BottomRight as
// "bottom_right". The vector store consumes these shapes verbatim as the
// "filter" field of a request body.

type matchEnvelope struct {
	Match matchBody `json:"match"`
}

type matchBody struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type rangeEnvelope struct {
	Range rangeBody `json:"range"`
}

type rangeBody struct {
	Key string   `json:"key"`
	GTE *float64 `json:"gte,omitempty"`
	LTE *float64 `json:"lte,omitempty"`
	GT  *float64 `json:"gt,omitempty"`
	LT  *float64 `json:"lt,omitempty"`
}

type geoBoundingBoxEnvelope struct {
	GeoBoundingBox geoBoundingBoxBody `json:"geo_bounding_box"`
}

type geoBoundingBoxBody struct {
	Key         string      `json:"key"`
	BoundingBox boundingBox `json:"bounding_box"`
}

type boundingBox struct {
	TopLeft     GeoPoint `json:"top_left"`
	BottomRight GeoPoint `json:"bottom_right"`
}

type geoRadiusEnvelope struct {
	GeoRadius geoRadiusBody `json:"geo_radius"`
}

type geoRadiusBody struct {
	Key    string   `json:"key"`
	Center GeoPoint `json:"center"`
	Radius float64  `json:"radius"`
}

type andEnvelope struct {
	Must []json.RawMessage `json:"must"`
}

type orEnvelope struct {
	Should []json.RawMessage `json:"should"`
}

type notEnvelope struct {
	MustNot []json.RawMessage `json:"must_not"`
}

func (m *Match) MarshalJSON() ([]byte, error) {
	return json.Marshal(matchEnvelope{Match: matchBody{Key: m.Key, Value: m.Value}})
}

func (r *Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeEnvelope{Range: rangeBody{
		Key: r.Key,
		GTE: r.GTE,
		LTE: r.LTE,
		GT:  r.GT,
		LT:  r.LT,
	}})
}

func (g *GeoBoundingBox) MarshalJSON() ([]byte, error) {
	return json.Marshal(geoBoundingBoxEnvelope{GeoBoundingBox: geoBoundingBoxBody{
		Key: g.Key,
		BoundingBox: boundingBox{
			TopLeft:     g.TopLeft,
			BottomRight: g.BottomRight,
		},
	}})
}

func (g *GeoRadius) MarshalJSON() ([]byte, error) {
	return json.Marshal(geoRadiusEnvelope{GeoRadius: geoRadiusBody{
		Key:    g.Key,
		Center: g.Center,
		Radius: g.Radius,
	}})
}

func (a *And) MarshalJSON() ([]byte, error) {
	children, err := marshalChildren(a.Must)
	if err != nil {
		return nil, err
	}
	return json.Marshal(andEnvelope{Must: children})
}

func (o *Or) MarshalJSON() ([]byte, error) {
	children, err := marshalChildren(o.Should)
	if err != nil {
		return nil, err
	}
	return json.Marshal(orEnvelope{Should: children})
}

func (n *Not) MarshalJSON() ([]byte, error) {
	children, err := marshalChildren(n.MustNot)
	if err != nil {
		return nil, err
	}
	return json.Marshal(notEnvelope{MustNot: children})
}

func marshalChildren(filters []Filter) ([]json.RawMessage, error) {
	children := make([]json.RawMessage, 0, len(filters))
	for _, f := range filters {
		data, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		children = append(children, data)
	}
	return children, nil
}

// Serialize renders a Filter as deterministic JSON for logging and
// debugging. A nil filter serializes as "null". The output is the same
// shape the vector store consumes, so Decode(Serialize(f)) reproduces f.
func Serialize(f Filter) (string, error) {
	if f == nil {
		return "null", nil
	}
	data, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("filter: serialize failed: %w", err)
	}
	return string(data), nil
}

// Decode parses wire-format JSON back into a Filter tree. The variant is
// detected from the envelope key ("match", "range", "geo_bounding_box",
// "geo_radius", "must", "should", "must_not"); "null" decodes to nil.
// Match values decode with encoding/json's default mapping, so numbers
// come back as float64.
func Decode(data []byte) (Filter, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("filter: decode failed: %w", err)
	}
	if probe == nil {
		return nil, nil
	}
	if len(probe) != 1 {
		return nil, fmt.Errorf("filter: decode expects exactly one envelope key, got %d", len(probe))
	}

	for tag, raw := range probe {
		switch tag {
		case "match":
			var body matchBody
			if err := json.Unmarshal(raw, &body); err != nil {
				return nil, fmt.Errorf("filter: decode match: %w", err)
			}
			return &Match{Key: body.Key, Value: body.Value}, nil
		case "range":
			var body rangeBody
			if err := json.Unmarshal(raw, &body); err != nil {
				return nil, fmt.Errorf("filter: decode range: %w", err)
			}
			return &Range{Key: body.Key, GTE: body.GTE, LTE: body.LTE, GT: body.GT, LT: body.LT}, nil
		case "geo_bounding_box":
			var body geoBoundingBoxBody
			if err := json.Unmarshal(raw, &body); err != nil {
				return nil, fmt.Errorf("filter: decode geo_bounding_box: %w", err)
			}
			return &GeoBoundingBox{
				Key:         body.Key,
				TopLeft:     body.BoundingBox.TopLeft,
				BottomRight: body.BoundingBox.BottomRight,
			}, nil
		case "geo_radius":
			var body geoRadiusBody
			if err := json.Unmarshal(raw, &body); err != nil {
				return nil, fmt.Errorf("filter: decode geo_radius: %w", err)
			}
			return &GeoRadius{Key: body.Key, Center: body.Center, Radius: body.Radius}, nil
		case "must":
			children, err := decodeChildren(raw)
			if err != nil {
				return nil, err
			}
			return &And{Must: children}, nil
		case "should":
			children, err := decodeChildren(raw)
			if err != nil {
				return nil, err
			}
			return &Or{Should: children}, nil
		case "must_not":
			children, err := decodeChildren(raw)
			if err != nil {
				return nil, err
			}
			return &Not{MustNot: children}, nil
		default:
			return nil, fmt.Errorf("filter: decode found unknown envelope key %q", tag)
		}
	}

	return nil, nil
}

func decodeChildren(raw json.RawMessage) ([]Filter, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("filter: decode composite children: %w", err)
	}
	children := make([]Filter, 0, len(items))
	for _, item := range items {
		child, err := Decode(item)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
