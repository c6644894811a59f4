package BoundMap

import (
	Go_BoundMap "github.com/g-m-twostay/go-boundmap"
)

// IndexPolicy decides how a hash picks a bucket.
type IndexPolicy byte

const (
	// Modulo keeps exactly capacity buckets and uses hash % capacity.
	Modulo IndexPolicy = iota
	// PowerOfTwo rounds the bucket count up to a power of 2 and uses hash & (buckets-1). Capacity, the key limit, is unchanged.
	PowerOfTwo
)

func (p IndexPolicy) String() string {
	switch p {
	case Modulo:
		return "modulo"
	case PowerOfTwo:
		return "power-of-two"
	}
	return "unknown"
}

// Config of a BoundMap. Use the With functions rather than filling it directly.
type Config struct {
	Hasher Go_BoundMap.Hasher
	Seed   uint
	Policy IndexPolicy
}

// WithHasher replaces the default xxhash hasher.
func WithHasher(h Go_BoundMap.Hasher) func(*Config) {
	return func(c *Config) {
		c.Hasher = h
	}
}

// WithSeed seeds the default hasher. Ignored when WithHasher is also given.
func WithSeed(seed uint) func(*Config) {
	return func(c *Config) {
		c.Seed = seed
	}
}

func WithIndexPolicy(p IndexPolicy) func(*Config) {
	return func(c *Config) {
		c.Policy = p
	}
}
