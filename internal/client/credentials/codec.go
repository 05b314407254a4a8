package credentials

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/cobragpt/internal/client/models"
	"github.com/go-playground/validator/v10"
)

// recordVersion is the current envelope version.
const recordVersion = 1

type envelope struct {
	Version int             `json:"version"`
	User    json.RawMessage `json:"user"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks u against the record schema.
func Validate(u *models.User) error {
	if u == nil {
		return fmt.Errorf("%w: nil user", ErrInvalidRecord)
	}
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return nil
}

// Encode validates u and wraps it in the current envelope.
func Encode(u *models.User) ([]byte, error) {
	if err := Validate(u); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("marshal user: %w", err)
	}
	return json.Marshal(envelope{Version: recordVersion, User: raw})
}

// Decode parses data into a validated user. Records written without an
// envelope (a bare user object) are accepted as well. The returned error
// explains why data was rejected; callers treat any error as "absent".
func Decode(data []byte) (*models.User, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	payload := data
	if _, ok := probe["version"]; ok {
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		if env.Version != recordVersion {
			return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidRecord, env.Version)
		}
		payload = env.User
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()

	var u models.User
	if err := dec.Decode(&u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if err := Validate(&u); err != nil {
		return nil, err
	}
	return &u, nil
}
