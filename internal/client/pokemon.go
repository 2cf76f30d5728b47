package client

import "fmt"

// PlaceholderImage is shown when a Pokémon has no artwork at all.
const PlaceholderImage = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/0.png"

// Pokemon is the slice of a PokéAPI detail payload the dashboard renders.
type Pokemon struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

// ImageURL prefers official artwork, then the default sprite, then a placeholder.
func (p Pokemon) ImageURL() string {
	if u := p.Sprites.Other.OfficialArtwork.FrontDefault; u != "" {
		return u
	}
	if u := p.Sprites.FrontDefault; u != "" {
		return u
	}
	return PlaceholderImage
}

// DisplayID renders the dex number zero-padded to three digits.
func (p Pokemon) DisplayID() string {
	return fmt.Sprintf("#%03d", p.ID)
}

func (p Pokemon) TypeNames() []string {
	out := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		out = append(out, t.Type.Name)
	}
	return out
}

// PokemonPage is one page of the list endpoint.
type PokemonPage struct {
	Count   int `json:"count"`
	Results []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}
