package fontcache

// macOS rescans font folders itself and ships without fontconfig
const defaultKind = KindNone
