// Package registry resolves which registry URL serves a package.
//
// Unscoped packages always use the default registry, taken from the
// "registry" key or falling back to https://registry.npmjs.org/. Scoped
// packages (@scope/name) use "@scope:registry" when it is set to a valid URL.
// Every registry URL is normalized to end with '/'.
package registry
