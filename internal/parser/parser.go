// Package parser turns raw model output into validated domain values.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ziadkadry99/ytgap/internal/trend"
)

// ErrMalformedResponse is returned when the model output is not valid JSON
// or does not have the expected shape.
var ErrMalformedResponse = errors.New("received malformed data from AI")

// fenceRe matches a whole-text fenced code block with an optional language tag.
var fenceRe = regexp.MustCompile("(?s)^```(\\w*)?\\s*\\n?(.*?)\\n?\\s*```$")

// StripFences trims raw and, when the entire text is wrapped in a fenced
// code block, returns the trimmed inner text.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if m := fenceRe.FindStringSubmatch(s); m != nil && m[2] != "" {
		return strings.TrimSpace(m[2])
	}
	return s
}

// rawTrend mirrors the wire shape with pointers so missing keys are detectable.
// Counts are capped at the largest integer a float64 holds exactly so the
// conversion to int64 cannot overflow.
type rawTrend struct {
	Term          *string  `json:"term" validate:"required,min=1"`
	DailySearches *float64 `json:"dailySearches" validate:"required,gte=0,lte=9007199254740991"`
	VideoCount    *float64 `json:"videoCount" validate:"required,gte=0,lte=9007199254740991"`
}

type rawIdeas struct {
	Titles  *[]string `json:"titles" validate:"required"`
	Outline *string   `json:"outline" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON key names in validation errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseTrends parses a trend discovery response. The payload must be a JSON
// array whose elements each carry term, dailySearches and videoCount.
func ParseTrends(raw string) ([]trend.Trend, error) {
	data := []byte(StripFences(raw))
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrMalformedResponse)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return nil, fmt.Errorf("%w: expected an array", ErrMalformedResponse)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	trends := make([]trend.Trend, 0, len(items))
	for i, item := range items {
		var rt rawTrend
		if err := json.Unmarshal(item, &rt); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrMalformedResponse, i, err)
		}
		if err := validate.Struct(rt); err != nil {
			return nil, fmt.Errorf("%w: element %d: %s", ErrMalformedResponse, i, describe(err))
		}
		trends = append(trends, trend.Trend{
			Term:          *rt.Term,
			DailySearches: int64(*rt.DailySearches),
			VideoCount:    int64(*rt.VideoCount),
		})
	}
	return trends, nil
}

// ParseIdeas parses an idea generation response. The payload must be a JSON
// object with a titles array and an outline string. The number of titles is
// not checked.
func ParseIdeas(raw string) (*trend.ContentIdeas, error) {
	data := []byte(StripFences(raw))
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrMalformedResponse)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil, fmt.Errorf("%w: object has incorrect shape", ErrMalformedResponse)
	}

	var ri rawIdeas
	if err := json.Unmarshal(data, &ri); err != nil {
		return nil, fmt.Errorf("%w: object has incorrect shape: %v", ErrMalformedResponse, err)
	}
	if err := validate.Struct(ri); err != nil {
		return nil, fmt.Errorf("%w: object has incorrect shape: %s", ErrMalformedResponse, describe(err))
	}

	return &trend.ContentIdeas{Titles: *ri.Titles, Outline: *ri.Outline}, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must not be empty", fe.Field()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be <= %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, ", ")
}
