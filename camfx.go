// Package camfx layers timed visual effects (shake, pan, zoom, rotate,
// fade) onto a scene container owned by the host's render loop.
//
// A Camera holds the active effects and advances them once per externally
// driven frame tick; each effect is removed when its duration elapses, its
// end condition fires, or its own update reports arrival. The library does
// no scheduling and no rendering of its own: the host calls Camera.Tick
// every frame with that frame's delta in milliseconds, and effects mutate
// the node's transform state directly.
//
// Package scene provides an ebiten-backed node, package prefabs loads
// yaml effect definitions with hot reload, and package script compiles
// tengo end conditions and scripted effects.
package camfx
