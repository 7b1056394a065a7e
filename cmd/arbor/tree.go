package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/pbanos/arbor/feature"
	"github.com/pbanos/arbor/tree"
	"github.com/pbanos/arbor/tree/json"
	"github.com/pbanos/arbor/tree/redisstore"
	"gopkg.in/redis.v5"
)

const redisKeyPrefix = "arbor"

func isRedisLocation(location string) bool {
	return strings.HasPrefix(location, "redis://")
}

/*
redisStore takes a redis://[:password@]host:port/key URL and a slice of
features and returns a tree.Store on the redis DB along with the key on it.
*/
func redisStore(location string, features []feature.Feature) (tree.Store, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, "", fmt.Errorf("parsing redis URL %s: %v", location, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return nil, "", fmt.Errorf("redis URL %s has no key", location)
	}
	opts := &redis.Options{Addr: u.Host}
	if u.User != nil {
		opts.Password, _ = u.User.Password()
	}
	return redisstore.New(redis.NewClient(opts), redisKeyPrefix, json.NewNodeEncodeDecoder(features)), key, nil
}

/*
readTree loads a tree from the given location: a redis URL or a path to a
JSON file ("" reads STDIN). The metadata, which may be nil, declares the
types of the features of the tree.
*/
func (rcc *rootCmdConfig) readTree(location string, md feature.Metadata) (*tree.Node, []feature.Feature, error) {
	if isRedisLocation(location) {
		rcc.Logf("Loading tree from %s...", location)
		store, key, err := redisStore(location, nil)
		if err != nil {
			return nil, nil, err
		}
		defer store.Close(rcc.Context())
		n, err := store.Load(rcc.Context(), key)
		if err != nil {
			return nil, nil, err
		}
		if n == nil {
			return nil, nil, fmt.Errorf("no tree stored at %s", location)
		}
		return n, nil, nil
	}
	f := os.Stdin
	if location != "" {
		var err error
		rcc.Logf("Reading tree from %s...", location)
		f, err = os.Open(location)
		if err != nil {
			return nil, nil, fmt.Errorf("reading tree in JSON from %s: %v", location, err)
		}
		defer f.Close()
	} else {
		rcc.Logf("Reading tree from STDIN...")
	}
	n, features, err := json.ReadJSONTree(f, md)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing tree in JSON from %s: %v", location, err)
	}
	return n, features, nil
}

/*
writeTree saves the tree on the given location: a redis URL or a path to a
JSON file ("" writes on STDOUT).
*/
func (rcc *rootCmdConfig) writeTree(location string, n *tree.Node, features []feature.Feature) error {
	if isRedisLocation(location) {
		rcc.Logf("Saving tree to %s...", location)
		store, key, err := redisStore(location, features)
		if err != nil {
			return err
		}
		defer store.Close(rcc.Context())
		return store.Save(rcc.Context(), key, n)
	}
	f := os.Stdout
	if location != "" {
		var err error
		rcc.Logf("Writing tree to %s...", location)
		f, err = os.Create(location)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return json.WriteJSONTree(n, features, f)
}
