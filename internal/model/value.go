package model

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genproto/googleapis/type/latlng"
)

// Value kind discriminators used in the "_type" envelope for scalar values
// that have no native JSON representation.
const (
	KindTimestamp  = "timestamp"
	KindGeoPoint   = "geopoint"
	KindReference  = "reference"
	KindBytes      = "bytes"
	KindSerialized = "serialized"
)

// Reference is a document reference value, normalized from the vendor SDK
// type at the adapter boundary.
type Reference struct {
	Path string
}

// EncodeValue converts a raw field value tree into a JSON-safe tree. Vendor
// scalar kinds are classified by an ordered, explicit list of predicates and
// wrapped in a {"_type": kind, ...} envelope so the export is
// round-trippable without ambiguity. Anything not recognized and not
// JSON-marshalable falls back to its stringified form.
func EncodeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = EncodeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = EncodeValue(item)
		}
		return out
	case time.Time:
		return map[string]any{
			"_type":       KindTimestamp,
			"value":       val.UTC().Format(time.RFC3339Nano),
			"nanoseconds": val.Nanosecond(),
		}
	case *latlng.LatLng:
		return map[string]any{
			"_type":     KindGeoPoint,
			"latitude":  val.GetLatitude(),
			"longitude": val.GetLongitude(),
		}
	case Reference:
		return map[string]any{
			"_type": KindReference,
			"path":  val.Path,
		}
	case []byte:
		return map[string]any{
			"_type": KindBytes,
			"value": base64.StdEncoding.EncodeToString(val),
		}
	case bool, string, float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return val
	default:
		if _, err := json.Marshal(val); err == nil {
			return val
		}
		return map[string]any{
			"_type": KindSerialized,
			"value": fmt.Sprint(val),
		}
	}
}

// DecodeValue reverses EncodeValue: envelopes carrying a "_type"
// discriminator are restored to their native value, everything else passes
// through. Unrecognized or malformed envelopes are returned as-is.
func DecodeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		kind, ok := val["_type"].(string)
		if !ok {
			out := make(map[string]any, len(val))
			for k, item := range val {
				out[k] = DecodeValue(item)
			}
			return out
		}
		return decodeEnvelope(kind, val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = DecodeValue(item)
		}
		return out
	default:
		return v
	}
}

func decodeEnvelope(kind string, val map[string]any) any {
	switch kind {
	case KindTimestamp:
		s, ok := val["value"].(string)
		if !ok {
			return val
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return val
		}
		return t
	case KindGeoPoint:
		lat, latOK := toFloat64(val["latitude"])
		lng, lngOK := toFloat64(val["longitude"])
		if !latOK || !lngOK {
			return val
		}
		return &latlng.LatLng{Latitude: lat, Longitude: lng}
	case KindReference:
		path, ok := val["path"].(string)
		if !ok {
			return val
		}
		return Reference{Path: path}
	case KindBytes:
		s, ok := val["value"].(string)
		if !ok {
			return val
		}
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return val
		}
		return raw
	case KindSerialized:
		if s, ok := val["value"].(string); ok {
			return s
		}
		return val
	default:
		return val
	}
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
