//go:build !windows && !darwin

package fontcache

const defaultKind = KindFcCache
