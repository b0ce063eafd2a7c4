package fontcache

const DefaultKind = defaultKind
