package format

import "fmt"

// Accessors over the weakly-typed payload document. Absence (or an explicit
// null) is never an error: object accessors fall back to an empty object and
// field accessors return nil. A field that is present with the wrong type is
// an error, which fails the whole format operation.

// subObject returns the named field as an object, or an empty object when
// the field is absent.
func subObject(doc map[string]any, key string) (map[string]any, error) {
	value, ok := doc[key]
	if !ok || value == nil {
		return map[string]any{}, nil
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("field %q: expected object, got %T", key, value)
	}

	return obj, nil
}

// firstObject returns the first element of the named array field, or an
// empty object when the field is absent or the array is empty.
func firstObject(doc map[string]any, key string) (map[string]any, error) {
	value, ok := doc[key]
	if !ok || value == nil {
		return map[string]any{}, nil
	}

	arr, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q: expected array, got %T", key, value)
	}
	if len(arr) == 0 {
		return map[string]any{}, nil
	}

	obj, ok := arr[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("field %q: expected array of objects, got %T", key, arr[0])
	}

	return obj, nil
}

// stringField returns the named string field, or nil when absent.
func stringField(doc map[string]any, key string) (*string, error) {
	value, ok := doc[key]
	if !ok || value == nil {
		return nil, nil
	}

	str, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("field %q: expected string, got %T", key, value)
	}

	return &str, nil
}

// numberField returns the named numeric field, or nil when absent.
func numberField(doc map[string]any, key string) (*float64, error) {
	value, ok := doc[key]
	if !ok || value == nil {
		return nil, nil
	}

	num, ok := value.(float64)
	if !ok {
		return nil, fmt.Errorf("field %q: expected number, got %T", key, value)
	}

	return &num, nil
}

// intField returns the named numeric field truncated to an integer, or nil
// when absent.
func intField(doc map[string]any, key string) (*int64, error) {
	num, err := numberField(doc, key)
	if err != nil || num == nil {
		return nil, err
	}

	val := int64(*num)

	return &val, nil
}
