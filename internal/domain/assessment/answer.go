package assessment

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Answer is the raw JSON of a submitted answer. It is persisted as
// {"value": <answer>} so scalar answers never pick up a numeric column
// affinity, and unwrapped again on scan.
type Answer json.RawMessage

type answerEnvelope struct {
	Value json.RawMessage `json:"value"`
}

func (a Answer) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(answerEnvelope{Value: json.RawMessage(a)})
	if err != nil {
		return nil, fmt.Errorf("encode answer: %w", err)
	}
	return string(b), nil
}

// Scan also accepts bare values written before answers were wrapped.
func (a *Answer) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case []byte:
		raw = append([]byte(nil), v...)
	case string:
		raw = []byte(v)
	case int64:
		raw = strconv.AppendInt(nil, v, 10)
	case float64:
		raw = strconv.AppendFloat(nil, v, 'g', -1, 64)
	case bool:
		raw = strconv.AppendBool(nil, v)
	default:
		return fmt.Errorf("scan answer: unsupported type %T", src)
	}

	var env answerEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Value != nil {
		*a = Answer(env.Value)
		return nil
	}
	*a = Answer(raw)
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("null"), nil
	}
	return json.RawMessage(a).MarshalJSON()
}

func (a *Answer) UnmarshalJSON(b []byte) error {
	*a = append((*a)[:0], b...)
	return nil
}

func (Answer) GormDataType() string { return "json" }

func (Answer) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return datatypes.JSON(nil).GormDBDataType(db, field)
}
