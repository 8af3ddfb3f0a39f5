// Package catalog holds the compiled-in game data: playable roles, the
// starting ministry roster, the technology tree and the turn-zero stats.
// None of it is persisted; game state only records which technologies have
// been unlocked.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jwebster45206/modern-world/pkg/state"
)

// Role is a playable position in the government.
type Role struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

const (
	RolePresident = "Cumhurbaşkanı"
	RoleMarshal   = "Mareşal"
	RoleEconomy   = "Ekonomi Bakanı"
	RoleForeign   = "Dışişleri Bakanı"
	RoleScience   = "Bilim Bakanı"
)

// StartingDate is the in-game date of every new game.
const StartingDate = "1 Ocak 2026"

// ErrUnknownRole is returned when a role id is not in Roles.
var ErrUnknownRole = errors.New("unknown role")

var roles = []Role{
	{ID: RolePresident, Description: "Genel strateji ve kabine yönetimi.", Icon: "crown"},
	{ID: RoleMarshal, Description: "Milli savunma ve askeri harekatlar.", Icon: "shield"},
	{ID: RoleEconomy, Description: "Maliye, hazine ve ticaret politikaları.", Icon: "chart"},
	{ID: RoleForeign, Description: "Uluslararası ilişkiler ve diplomasi.", Icon: "handshake"},
	{ID: RoleScience, Description: "Ar-Ge, teknoloji ve gelecek vizyonu.", Icon: "microscope"},
}

var technologies = []state.Technology{
	{ID: "cyber_def", Name: "Siber Kalkan", Description: "Gelişmiş ulusal güvenlik duvarı.", Cost: 40, Category: state.TechMilitary, Benefit: "+10 İstikrar, Siber krizlere karşı bağışıklık.", Icon: "user-shield"},
	{ID: "green_energy", Name: "Yeşil Dönüşüm", Description: "Yenilenebilir enerji altyapısı.", Cost: 35, Category: state.TechEconomic, Benefit: "+5% GSYH, Uzun vadeli enflasyon düşüşü.", Icon: "leaf"},
	{ID: "ai_gov", Name: "Yapay Zeka Yönetimi", Description: "Bürokraside AI entegrasyonu.", Cost: 50, Category: state.TechSocial, Benefit: "+15 Bakanlık Verimliliği.", Icon: "brain"},
	{ID: "stealth_tech", Name: "Hayalet Filo", Description: "Düşman radarlarında görünmezlik.", Cost: 60, Category: state.TechMilitary, Benefit: "+15 Ordu Morali, Gizli operasyon başarısı.", Icon: "plane-up"},
	{ID: "fintech_hub", Name: "Global Finans Merkezi", Description: "Dijital bankacılık devrimi.", Cost: 45, Category: state.TechEconomic, Benefit: "+10% Bütçe Dengesi.", Icon: "coins"},
	{ID: "universal_edu", Name: "Dijital Akademi", Description: "Herkes için yüksek kaliteli online eğitim.", Cost: 30, Category: state.TechSocial, Benefit: "+10 Halk Desteği.", Icon: "graduation-cap"},
}

var ministries = []state.Ministry{
	{ID: "def", Name: "Savunma Bakanlığı", MinisterName: "Bakan Atandı", Portfolio: "Savunma ve Ordu", Icon: "shield-halved", Morale: 70, BudgetShare: 20, Efficiency: 80},
	{ID: "eco", Name: "Ekonomi Bakanlığı", MinisterName: "Bakan Atandı", Portfolio: "Maliye ve Hazine", Icon: "wallet", Morale: 65, BudgetShare: 25, Efficiency: 75},
	{ID: "int", Name: "İçişleri Bakanlığı", MinisterName: "Bakan Atandı", Portfolio: "Güvenlik ve Toplum", Icon: "building-shield", Morale: 60, BudgetShare: 15, Efficiency: 70},
	{ID: "for", Name: "Dışişleri Bakanlığı", MinisterName: "Bakan Atandı", Portfolio: "Diplomasi", Icon: "handshake", Morale: 75, BudgetShare: 10, Efficiency: 85},
	{ID: "sci", Name: "Bilim ve Teknoloji", MinisterName: "Bakan Atandı", Portfolio: "Ar-Ge ve Uzay", Icon: "microscope", Morale: 80, BudgetShare: 5, Efficiency: 90},
}

// Roles returns the playable roles in display order.
func Roles() []Role {
	return slices.Clone(roles)
}

// RoleByID returns the role with the given id.
func RoleByID(id string) (Role, bool) {
	i := slices.IndexFunc(roles, func(r Role) bool { return r.ID == id })
	if i < 0 {
		return Role{}, false
	}
	return roles[i], true
}

func IsValidRole(id string) bool {
	_, ok := RoleByID(id)
	return ok
}

// DefaultMinistries returns a fresh copy of the starting cabinet.
func DefaultMinistries() []state.Ministry {
	out := make([]state.Ministry, len(ministries))
	copy(out, ministries)
	return out
}

// IsKnownMinistry reports whether id belongs to the starting roster.
func IsKnownMinistry(id string) bool {
	return slices.ContainsFunc(ministries, func(m state.Ministry) bool { return m.ID == id })
}

// Technologies returns the research tree in display order.
func Technologies() []state.Technology {
	return slices.Clone(technologies)
}

// TechnologyByID returns the catalog entry for a technology id.
func TechnologyByID(id string) (state.Technology, bool) {
	i := slices.IndexFunc(technologies, func(t state.Technology) bool { return t.ID == id })
	if i < 0 {
		return state.Technology{}, false
	}
	return technologies[i], true
}

// StartingStats are the national indicators every game begins with.
func StartingStats() state.Stats {
	return state.Stats{
		GDP:           500,
		Inflation:     12,
		Unemployment:  9,
		BudgetBalance: -10,
		ArmyMorale:    60,
		PublicSupport: 55,
		Stability:     58,
		TechPoints:    50,
	}
}

// NewSeed builds the turn-zero state handed to the bootstrap call.
func NewSeed(country, roleID string) (*state.GameState, error) {
	if !IsValidRole(roleID) {
		return nil, fmt.Errorf("%q: %w", roleID, ErrUnknownRole)
	}
	return state.NewGameState(country, roleID, StartingDate, StartingStats(), DefaultMinistries()), nil
}
