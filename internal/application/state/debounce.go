package state

import (
	"sync"
	"time"
)

// DefaultDebounce ventana por defecto para la búsqueda con debounce.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer limita el despacho de un valor que llega en ráfagas (las teclas
// de un buscador, los ticks del arrastre de una columna): cada Type reinicia
// el timer, de modo que solo el último valor de la ráfaga se despacha.
// "Último valor gana": un Type posterior descarta el pendiente anterior.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func(string)

	pending string
	armed   bool
}

// NewDebouncer crea un debouncer que invoca fn con el valor final tras delay
// sin nuevas teclas. Con delay <= 0 usa DefaultDebounce.
func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Type registra una tecla: guarda el valor y reinicia la ventana.
func (d *Debouncer) Type(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = value
	d.armed = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return
	}
	value := d.pending
	d.armed = false
	d.mu.Unlock()
	d.fn(value)
}

// Flush despacha inmediatamente el valor pendiente (Enter en el buscador).
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.fire()
}

// Stop cancela cualquier despacho pendiente (al salir de la pantalla).
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.armed = false
}
