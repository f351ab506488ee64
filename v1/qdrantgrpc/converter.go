package qdrantgrpc

import (
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/mindkeep-ai/mindkeep/v1/filter"
)

// toQdrantFilter converts a filter tree into the SDK's protobuf filter.
// A nil tree yields nil, meaning match everything. A bare leaf becomes a
// single-condition Must clause.
func toQdrantFilter(f filter.Filter) (*qdrant.Filter, error) {
	if f == nil {
		return nil, nil
	}

	switch node := f.(type) {
	case *filter.And:
		conds, err := toQdrantConditions(node.Must)
		if err != nil {
			return nil, err
		}
		return &qdrant.Filter{Must: conds}, nil
	case *filter.Or:
		conds, err := toQdrantConditions(node.Should)
		if err != nil {
			return nil, err
		}
		return &qdrant.Filter{Should: conds}, nil
	case *filter.Not:
		conds, err := toQdrantConditions(node.MustNot)
		if err != nil {
			return nil, err
		}
		return &qdrant.Filter{MustNot: conds}, nil
	default:
		cond, err := toQdrantCondition(f)
		if err != nil {
			return nil, err
		}
		return &qdrant.Filter{Must: []*qdrant.Condition{cond}}, nil
	}
}

func toQdrantConditions(children []filter.Filter) ([]*qdrant.Condition, error) {
	conds := make([]*qdrant.Condition, 0, len(children))
	for _, child := range children {
		cond, err := toQdrantCondition(child)
		if err != nil {
			return nil, err
		}
		conds = append(conds, cond)
	}
	return conds, nil
}

// toQdrantCondition converts a single tree node to a protobuf condition.
// Nested composites are wrapped in a sub-filter condition, preserving
// arbitrary nesting depth.
func toQdrantCondition(f filter.Filter) (*qdrant.Condition, error) {
	switch node := f.(type) {
	case *filter.Match:
		return matchCondition(node)
	case *filter.Range:
		return qdrant.NewRange(node.Key, &qdrant.Range{
			Gt:  node.GT,
			Gte: node.GTE,
			Lt:  node.LT,
			Lte: node.LTE,
		}), nil
	case *filter.GeoBoundingBox:
		return &qdrant.Condition{
			ConditionOneOf: &qdrant.Condition_Field{
				Field: &qdrant.FieldCondition{
					Key: node.Key,
					GeoBoundingBox: &qdrant.GeoBoundingBox{
						TopLeft:     geoPoint(node.TopLeft),
						BottomRight: geoPoint(node.BottomRight),
					},
				},
			},
		}, nil
	case *filter.GeoRadius:
		return &qdrant.Condition{
			ConditionOneOf: &qdrant.Condition_Field{
				Field: &qdrant.FieldCondition{
					Key: node.Key,
					GeoRadius: &qdrant.GeoRadius{
						Center: geoPoint(node.Center),
						Radius: float32(node.Radius),
					},
				},
			},
		}, nil
	case *filter.And, *filter.Or, *filter.Not:
		sub, err := toQdrantFilter(node)
		if err != nil {
			return nil, err
		}
		return &qdrant.Condition{
			ConditionOneOf: &qdrant.Condition_Filter{Filter: sub},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported filter node type: %T", f)
	}
}

func matchCondition(m *filter.Match) (*qdrant.Condition, error) {
	switch v := m.Value.(type) {
	case string:
		return qdrant.NewMatch(m.Key, v), nil
	case bool:
		return qdrant.NewMatchBool(m.Key, v), nil
	case int:
		return qdrant.NewMatchInt(m.Key, int64(v)), nil
	case int64:
		return qdrant.NewMatchInt(m.Key, v), nil
	case float64:
		// JSON numbers decode as float64; qdrant matches integers only.
		return qdrant.NewMatchInt(m.Key, int64(v)), nil
	default:
		return nil, fmt.Errorf("unsupported match value type %T for key %q", v, m.Key)
	}
}

func geoPoint(p filter.GeoPoint) *qdrant.GeoPoint {
	return &qdrant.GeoPoint{Lat: p.Lat, Lon: p.Lon}
}

// extractPointID extracts a string ID from Qdrant's PointId type.
func extractPointID(id *qdrant.PointId) (string, error) {
	if id == nil {
		return "", fmt.Errorf("nil point ID")
	}
	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Num:
		return fmt.Sprintf("%d", v.Num), nil
	case *qdrant.PointId_Uuid:
		return v.Uuid, nil
	default:
		return "", fmt.Errorf("unexpected PointId type: %T", v)
	}
}

// convertPayload converts Qdrant's protobuf payload to a generic map.
func convertPayload(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		result[k] = extractValue(v)
	}
	return result
}

// extractValue recursively converts a Qdrant Value to a Go native type.
func extractValue(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch val := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_StructValue:
		if val.StructValue == nil {
			return nil
		}
		return convertPayload(val.StructValue.Fields)
	case *qdrant.Value_ListValue:
		if val.ListValue == nil {
			return nil
		}
		items := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			items[i] = extractValue(item)
		}
		return items
	default:
		return nil
	}
}
