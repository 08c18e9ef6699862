// Package pluginlua implements tagmatch.PluginSource by running a single
// sandboxed Lua script that a library operator supplies, so candidate
// sources outside MusicBrainz (a local cache, a private catalog, a
// hand-curated override list) can be plugged in without recompiling.
//
// Grounded on Ambrevar-demlo/luascript.go and sandbox.go: a lua.State built
// once with MakeSandbox, a fixed whitelist of globals restored before every
// call (luaRestoreSandbox), and Go<->Lua value transfer done with
// github.com/stevedonovan/luar's GoToLua/LuaToGo rather than hand-rolled
// marshaling. Unlike demlo, this sandbox carries no golua/unicode case
// folding (string casing in this module is plain ASCII lowercase, see
// internal/dist) so that dependency is not reused here.
package pluginlua

import (
	"context"
	"fmt"
	"os"
	"reflect"

	"github.com/aarzilli/golua/lua"
	"github.com/stevedonovan/luar"

	"github.com/ambrevar/tagmatch"
)

const (
	registryWhitelist = "_whitelist"

	fnAlbumCandidates = "album_candidates"
	fnItemCandidates  = "item_candidates"
	fnAlbumDistance   = "album_distance"
	fnTrackDistance   = "track_distance"
)

// Source runs a single Lua script in a sandboxed interpreter to answer the
// tagmatch.PluginSource contract. A script need not define every entry
// point: a missing function behaves like NoPlugins for that method.
type Source struct {
	state  *lua.State
	script string
}

// Load reads and compiles the Lua script at path into a fresh sandbox.
func Load(path string) (*Source, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pluginlua: read %s: %w", path, err)
	}

	L, err := makeSandbox()
	if err != nil {
		return nil, err
	}

	if err := L.DoString(string(buf)); err != nil {
		L.Close()
		return nil, fmt.Errorf("pluginlua: load %s: %s", path, err)
	}

	return &Source{state: L, script: path}, nil
}

// Close releases the underlying Lua interpreter.
func (s *Source) Close() {
	s.state.Close()
}

// albumCandidatesArg, distanceArg and trackDistanceArg mirror the plain-data
// shape passed into Lua, since luar marshals exported struct fields only.
type albumCandidatesArg struct {
	Items []tagmatch.Item
}

type distanceArg struct {
	Items []tagmatch.Item
	Album tagmatch.AlbumInfo
}

type trackDistanceArg struct {
	Item  tagmatch.Item
	Track tagmatch.TrackInfo
}

// AlbumCandidates calls the script's album_candidates(items) function, if
// defined, expecting it to return a Lua array of album tables.
func (s *Source) AlbumCandidates(ctx context.Context, items []tagmatch.Item) ([]tagmatch.AlbumInfo, error) {
	if !s.hasGlobal(fnAlbumCandidates) {
		return nil, nil
	}
	var out []tagmatch.AlbumInfo
	err := s.call(fnAlbumCandidates, albumCandidatesArg{Items: items}, &out)
	return out, err
}

// ItemCandidates calls the script's item_candidates(item) function, if
// defined, expecting it to return a Lua array of track tables.
func (s *Source) ItemCandidates(ctx context.Context, item tagmatch.Item) ([]tagmatch.TrackInfo, error) {
	if !s.hasGlobal(fnItemCandidates) {
		return nil, nil
	}
	var out []tagmatch.TrackInfo
	err := s.call(fnItemCandidates, item, &out)
	return out, err
}

// scoreContribution is the shape a distance-contribution script returns:
// two numbers to be folded into the numerator/denominator accumulation of
// internal/score.
type scoreContribution struct {
	Num float64
	Den float64
}

// AlbumDistanceContribution calls album_distance(items, album), if defined.
func (s *Source) AlbumDistanceContribution(ctx context.Context, items []tagmatch.Item, album tagmatch.AlbumInfo) (float64, float64, error) {
	if !s.hasGlobal(fnAlbumDistance) {
		return 0, 0, nil
	}
	var out scoreContribution
	if err := s.call(fnAlbumDistance, distanceArg{Items: items, Album: album}, &out); err != nil {
		return 0, 0, err
	}
	return out.Num, out.Den, nil
}

// TrackDistanceContribution calls track_distance(item, track), if defined.
func (s *Source) TrackDistanceContribution(ctx context.Context, item tagmatch.Item, track tagmatch.TrackInfo) (float64, float64, error) {
	if !s.hasGlobal(fnTrackDistance) {
		return 0, 0, nil
	}
	var out scoreContribution
	if err := s.call(fnTrackDistance, trackDistanceArg{Item: item, Track: track}, &out); err != nil {
		return 0, 0, err
	}
	return out.Num, out.Den, nil
}

func (s *Source) hasGlobal(name string) bool {
	L := s.state
	L.GetGlobal(name)
	defined := L.IsFunction(-1)
	L.Pop(1)
	return defined
}

// call restores the sandbox, pushes arg as a single Lua value, invokes the
// named global function with it, and unmarshals the return value into out.
func (s *Source) call(name string, arg, out interface{}) error {
	L := s.state

	if err := L.DoString(luaRestoreSandbox); err != nil {
		return fmt.Errorf("pluginlua: restore sandbox: %s", err)
	}
	L.PushString(registryWhitelist)
	L.GetTable(lua.LUA_REGISTRYINDEX)
	if err := L.Call(1, 0); err != nil {
		return fmt.Errorf("pluginlua: restore sandbox: %s", err)
	}

	L.GetGlobal(name)
	luar.GoToLua(L, reflect.TypeOf(arg), reflect.ValueOf(arg), true)
	if err := L.Call(1, 1); err != nil {
		return fmt.Errorf("pluginlua: %s: %s", name, err)
	}

	result := luar.LuaToGo(L, reflect.TypeOf(out).Elem(), -1)
	L.Pop(1)
	reflect.ValueOf(out).Elem().Set(reflect.ValueOf(result))
	return nil
}

func makeSandbox() (*lua.State, error) {
	L := lua.NewState()
	L.OpenLibs()

	L.PushString(registryWhitelist)
	if err := L.DoString(luaWhitelist); err != nil {
		L.Close()
		return nil, fmt.Errorf("pluginlua: build whitelist: %s", err)
	}
	L.SetTable(lua.LUA_REGISTRYINDEX)

	if err := L.DoString(luaSetSandbox); err != nil {
		L.Close()
		return nil, fmt.Errorf("pluginlua: build sandbox setter: %s", err)
	}
	L.PushString(registryWhitelist)
	L.GetTable(lua.LUA_REGISTRYINDEX)
	if err := L.Call(1, 0); err != nil {
		L.Close()
		return nil, fmt.Errorf("pluginlua: set sandbox: %s", err)
	}

	return L, nil
}
