package redis

import (
	"sort"
	"strings"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// NewAccessor wraps a connected redis client. No keys are touched
// until a pattern asks for them.
func NewAccessor(client *redis.Client) *Accessor {
	return &Accessor{client}
}

// Accessor treats redis hashes as the object graph: a focus is a key
// in the "type:id" convention (e.g. "user:1"), an attribute is a hash
// field, and a field value with an "@" prefix is a reference to
// another key, which is how a pattern navigates from object to object.
// IsInstanceOf compares the key's type segment against a string
// descriptor.
//
// Redis being unreachable is an accessor malfunction and aborts the
// search; a missing field or key is an ordinary non-match.
type Accessor struct {
	client *redis.Client
}

func (a *Accessor) Attribute(object interface{}, name string) (interface{}, bool, error) {
	key, ok := object.(string)
	if !ok {
		return nil, false, nil
	}
	exists, err := a.client.HExists(key, name).Result()
	if err != nil {
		return nil, false, errors.Wrapf(err, "hexists %s %s", key, name)
	}
	if !exists {
		return nil, false, nil
	}
	val, err := a.client.HGet(key, name).Result()
	if err != nil {
		return nil, false, errors.Wrapf(err, "hget %s %s", key, name)
	}
	if strings.HasPrefix(val, "@") {
		return strings.TrimPrefix(val, "@"), true, nil
	}
	return val, true, nil
}

func (a *Accessor) IsInstanceOf(object interface{}, descriptor interface{}) (bool, error) {
	key, ok := object.(string)
	if !ok {
		return false, nil
	}
	name, ok := descriptor.(string)
	if !ok {
		return false, errors.Errorf("redis accessor needs string type descriptors, got %T", descriptor)
	}
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i] == name, nil
	}
	return false, nil
}

func (a *Accessor) AttributeNames(object interface{}) ([]string, error) {
	key, ok := object.(string)
	if !ok {
		return nil, nil
	}
	names, err := a.client.HKeys(key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "hkeys %s", key)
	}
	sort.Strings(names)
	return names, nil
}
