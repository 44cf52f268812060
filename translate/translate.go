// Package translate formats user-facing messages in the language of the
// running system.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const fallback = "en-US"

var (
	mutex   sync.RWMutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("duet: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the printer by BCP 47 tags, best match first.
// With no tags, en-US is used.
func SetLanguage(tags ...string) {
	if len(tags) == 0 {
		tags = []string{fallback}
	}

	tag := message.MatchLanguage(tags...)
	if tag == language.Und {
		tag = language.MustParse(fallback)
	}

	mutex.Lock()
	printer = message.NewPrinter(tag)
	mutex.Unlock()
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.RLock()
	defer mutex.RUnlock()

	return printer.Sprintf(key, args...)
}
