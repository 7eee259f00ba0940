package tracking_id

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	prefix       = "PC"
	suffixLength = 4
	base36Chars  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// TrackingIDFactory выпускает публичные трек-номера вида
// PC-<мс эпохи в base36>-<4 случайных base36 символа>.
// Случайный хвост дает 36^4 вариантов внутри одной миллисекунды;
// криптостойкость не нужна — это код для отображения, не секрет.
type TrackingIDFactory struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func New() *TrackingIDFactory {
	return &TrackingIDFactory{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (f *TrackingIDFactory) Generate() string {
	timePart := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	suffix := make([]byte, suffixLength)
	f.mu.Lock()
	for i := range suffix {
		suffix[i] = base36Chars[f.rnd.Intn(len(base36Chars))]
	}
	f.mu.Unlock()

	return prefix + "-" + timePart + "-" + string(suffix)
}
