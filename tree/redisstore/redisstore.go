/*
Package redisstore provides a tree.Store backed by a redis DB.
*/
package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/pbanos/arbor/tree"
	"gopkg.in/redis.v5"
)

/*
NodeEncodeDecoder is an interface for objects
that allow encoding trees into slices of
bytes and decoding them back to trees.
*/
type NodeEncodeDecoder interface {

	//Encode receives the root *tree.Node of a tree
	// and returns a slice of bytes with the tree
	//encoded or an error if the encoding could not
	//be performed for some reason.
	Encode(*tree.Node) ([]byte, error)

	//Decode receives a slice of bytes
	//and returns the root *tree.Node decoded from the
	//slice of bytes or an error if the decoding
	//could not be performed for some reason.
	Decode([]byte) (*tree.Node, error)
}

/*
Client is the subset of the *redis.Client methods the store uses.
*/
type Client interface {
	Set(key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(key string) *redis.StringCmd
	Del(keys ...string) *redis.IntCmd
	Close() error
}

type redisStore struct {
	rc      Client
	prefix  string
	nencdec NodeEncodeDecoder
}

//New builds a tree.Store backed by a redis DB, storing every
//tree under the given prefix followed by a colon and its key
func New(rc Client, prefix string, nencdec NodeEncodeDecoder) tree.Store {
	return &redisStore{rc, prefix, nencdec}
}

func (rs *redisStore) Save(ctx context.Context, key string, n *tree.Node) error {
	if n == nil {
		return tree.ErrNilTree
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	redisID := rs.keyFor(key)
	data, err := rs.nencdec.Encode(n)
	if err != nil {
		return fmt.Errorf("storing tree %q: encoding tree: %v", redisID, err)
	}
	_, err = rs.rc.Set(redisID, data, 0).Result()
	if err != nil {
		return fmt.Errorf("storing tree %q in redis: %v", redisID, err)
	}
	return nil
}

func (rs *redisStore) Load(ctx context.Context, key string) (*tree.Node, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	redisID := rs.keyFor(key)
	data, err := rs.rc.Get(redisID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %v", redisID, err)
	}
	n, err := rs.nencdec.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: decoding %q: %v", redisID, data, err)
	}
	return n, nil
}

func (rs *redisStore) Delete(ctx context.Context, key string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	redisID := rs.keyFor(key)
	_, err := rs.rc.Del(redisID).Result()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", redisID, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) keyFor(key string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, key)
}
