package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Console slash commands. Anything not starting with "/" is an order.
const (
	cmdHelp      = "/yardim"
	cmdTurn      = "/tur"
	cmdDecide    = "/karar"
	cmdVeto      = "/veto"
	cmdTech      = "/arge"
	cmdIntervene = "/mudahale"
	cmdCopy      = "/copy"
	cmdNewGame   = "/yeni"
	cmdQuit      = "/cikis"
)

const helpText = `Komutlar:
• <emir>            Emri danışmana ilet
• /tur              Turu tamamla (Sonraki Tur)
• /karar <n> <s>    n. kabine kararında s. seçeneği onayla
• /veto <n>         n. kabine kararını veto et
• /arge <n|id>      Teknolojiyi aktif et
• /mudahale <n>     n. kriz için müdahale planı yaz
• /copy             Son raporu panoya kopyala
• /yeni             Oyunu sil ve yeni sistem kur
• /cikis            Çıkış
• Tab / Shift+Tab   Görünüm değiştir
`

var errUsage = errors.New("usage")

type consoleCommand struct {
	name string
	args []string
}

func parseConsoleCommand(input string) (consoleCommand, bool) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return consoleCommand{}, false
	}
	return consoleCommand{name: strings.ToLower(fields[0]), args: fields[1:]}, true
}

// index parses the 1-based argument i against a list of length n and
// returns the 0-based index.
func (c consoleCommand) index(i, n int) (int, error) {
	if i >= len(c.args) {
		return 0, fmt.Errorf("%s: %w", c.name, errUsage)
	}
	v, err := strconv.Atoi(c.args[i])
	if err != nil {
		return 0, fmt.Errorf("%s: %q bir sayı değil", c.name, c.args[i])
	}
	if v < 1 || v > n {
		return 0, fmt.Errorf("%s: %d geçersiz (1-%d)", c.name, v, n)
	}
	return v - 1, nil
}
