package prompts

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/modern-world/pkg/catalog"
	"github.com/jwebster45206/modern-world/pkg/state"
)

// GameTitle is the name the oracle is told it is running.
const GameTitle = "Modern World: Global Sandbox"

// BaseSystemPrompt frames the oracle as the game engine and chief advisor.
// Arguments: title, country, role, unlocked technologies, salutation.
const BaseSystemPrompt = `Sen "%s" oyununun çekirdek motoru ve oyuncunun Başdanışmanısın.
OYUNCUNUN ÜLKESİ: %s
OYUNCUNUN ROLÜ: %s
AÇIK TEKNOLOJİLER: %s

Kişilik ve Görevler:
1. Hitap: Oyuncuya her zaman "%s" şeklinde hitap et. Samimi ama rütbesine saygılı bir ton kullan.
2. KRİZ ÜRETİMİ: Her turda mutlaka ülkenin mevcut stats durumuna ve açık teknolojilere göre en az 1-2 ciddi "Bekleyen Sorun" (pendingIssues) üret. Bu sorunlar ekonomik dalgalanma, sınır gerginliği, siber saldırı, toplumsal huzursuzluk veya diplomatik skandal olabilir.
3. NPC AKTİVİTESİ: Oyuncunun seçmediği bakanlar kendi başlarına küçük işler yapmaya devam eder. Bunu "npcActivity" alanında raporla.
4. SONRAKİ TUR: Oyuncu "%s" dediğinde, stagedDecisions listesindeki tüm kararları uygula ve zamanı bir ay ileri sararak yeni stats ve olayları getir.
5. JSON Çıktı: SADECE geçerli JSON döndür.

Simülasyon Kuralları:
- Seçilen role göre (örn: Mareşal isen askeri krizler) olayların ağırlığını ayarla.
- Teknoloji etkilerini (Ar-Ge) mutlaka hesaba kat.`

// ResponseFormatPrompt describes the JSON object every turn must return.
// Providers without native schema support rely on it.
const ResponseFormatPrompt = `ÇIKTI ŞEMASI (tüm alanlar zorunlu):
- date: string
- location: string
- summary: string
- intelligence: string
- pendingIssues: string dizisi
- updatedStats: { gdp, inflation, unemployment, budgetBalance, armyMorale, publicSupport, stability, techPoints } (sayı)
- updatedMinistries: [{ id, morale, budgetShare, efficiency }] (id yalnızca mevcut bakanlıklardan)
- cabinetDecisions: [{ id, title, description, fromMinistryId, options: [{ label, impact, action }] }]
- npcActivity: [{ ministerId, action }]
- relationsUpdate: [{ country, score }]`

// TurnPostPrompt is appended after the player's order.
const TurnPostPrompt = `Talimat: Eğer emir "%s" ise, stagedDecisions listesindeki tüm eylemleri işle ve sonuçlarını simüle et.`

const noTechnologies = "Henüz yok"

// RoleAddress returns how the advisor addresses a player in the given role.
func RoleAddress(role string) string {
	switch role {
	case catalog.RolePresident:
		return "Dostum Sayın Başkanım"
	case catalog.RoleMarshal:
		return "Dostum Sayın Mareşalim"
	default:
		return "Dostum Sayın Bakanım"
	}
}

// BuildSystemPrompt renders the framing for a role, country and the
// technologies unlocked so far.
func BuildSystemPrompt(role, country string, unlockedTechs []string) string {
	techs := strings.Join(unlockedTechs, ", ")
	if techs == "" {
		techs = noTechnologies
	}
	return fmt.Sprintf(BaseSystemPrompt, GameTitle, country, role, techs, RoleAddress(role), state.NextTurnCommand)
}

// BootstrapCommand is the order issued on the seed state to start a game.
func BootstrapCommand(country string) string {
	return fmt.Sprintf("2026 yılı için %s simülasyonunu başlat.", country)
}
