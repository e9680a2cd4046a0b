package directory

import "time"

// Category is the closed set of project categories accepted by the directory.
type Category string

const (
	CategoryAIAgents       Category = "ai-agents"
	CategoryDeFi           Category = "defi"
	CategoryGaming         Category = "gaming"
	CategoryInfrastructure Category = "infrastructure"
	CategoryNFT            Category = "nft"
	CategorySocial         Category = "social"
	CategoryTooling        Category = "tooling"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryAIAgents,
		CategoryDeFi,
		CategoryGaming,
		CategoryInfrastructure,
		CategoryNFT,
		CategorySocial,
		CategoryTooling,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }

// Project is a directory listing as stored in the remote projects table.
// ID and CreatedAt are server-assigned. A project is publicly visible only
// once Approved is true, which happens out of band.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website,omitempty"`
	Features    string    `json:"features"`
	Category    Category  `json:"category"`
	ImageURL    string    `json:"image_url,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectRecord is the insert payload for a new submission. It omits the
// server-assigned columns and always carries Approved=false.
type ProjectRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Website     string   `json:"website,omitempty"`
	Features    string   `json:"features"`
	Category    Category `json:"category"`
	ImageURL    string   `json:"image_url,omitempty"`
	UserID      string   `json:"user_id,omitempty"`
	Approved    bool     `json:"approved"`
}
