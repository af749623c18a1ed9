// Package cache implementa el query cache de la consola: una caché en memoria
// por proceso, clave = recurso + parámetros serializados, con ventana de
// frescura, recolección por inactividad y coalescencia de peticiones
// concurrentes a la misma clave.
package cache

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tu-usuario/moda-backoffice/pkg/logger"
)

// Ventanas por defecto.
const (
	DefaultStaleAfter = 5 * time.Minute  // datos más viejos se refrescan al acceder
	DefaultGCAfter    = 10 * time.Minute // entradas sin acceso se eliminan
	defaultSweepEvery = 30 * time.Second // frecuencia del barrido de limpieza
)

// FetchFunc obtiene el valor remoto para una clave.
type FetchFunc func(ctx context.Context) (any, error)

// Result resultado de un acceso a la caché. La caché nunca propaga panics ni
// lanza errores fuera de este contrato: el caller siempre recibe {Data, Err}.
// Si Err != nil y Data != nil, Data es el último valor bueno conocido
// (stale-while-revalidate: un refetch fallido no borra lo cacheado).
type Result struct {
	Data  any
	Err   error
	Stale bool // true si Data proviene de una entrada vencida
}

// entry una clave cacheada.
type entry struct {
	value      any
	fetchedAt  time.Time
	lastAccess time.Time
}

// QueryCache caché de consultas por proceso. Todas las pantallas comparten la
// misma instancia; se inicializa al arrancar la aplicación y se limpia al
// cerrar sesión (sin singletons ocultos).
type QueryCache struct {
	mu         sync.RWMutex
	entries    map[string]*entry
	group      singleflight.Group
	staleAfter time.Duration
	gcAfter    time.Duration
	log        *logger.Logger
	stopCh     chan struct{}
	stopOnce   sync.Once

	hits   int64
	misses int64
}

// Option opción de construcción.
type Option func(*QueryCache)

// WithWindows fija las ventanas de frescura y GC.
func WithWindows(staleAfter, gcAfter time.Duration) Option {
	return func(c *QueryCache) {
		if staleAfter > 0 {
			c.staleAfter = staleAfter
		}
		if gcAfter > 0 {
			c.gcAfter = gcAfter
		}
	}
}

// WithLogger inyecta el logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *QueryCache) { c.log = log }
}

// New construye la caché y arranca la goroutine de limpieza.
func New(opts ...Option) *QueryCache {
	c := &QueryCache{
		entries:    make(map[string]*entry),
		staleAfter: DefaultStaleAfter,
		gcAfter:    DefaultGCAfter,
		log:        logger.Nop(),
		stopCh:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.sweep()
	return c
}

// Key arma una clave de caché: recurso + sufijo de parámetros serializados.
func Key(resource, paramsSuffix string) string {
	if paramsSuffix == "" {
		return resource
	}
	return resource + "?" + paramsSuffix
}

// Fetch devuelve el valor para key. Si hay una entrada fresca, la retorna sin
// red. Si falta o está vencida, ejecuta fn con coalescencia: a lo sumo una
// petición en vuelo por clave; los llamadores concurrentes comparten el
// resultado. Un fn fallido conserva el último valor bueno (SWR).
func (c *QueryCache) Fetch(ctx context.Context, key string, fn FetchFunc) Result {
	now := time.Now()

	c.mu.Lock()
	e, ok := c.entries[key]
	if ok {
		e.lastAccess = now
		if now.Sub(e.fetchedAt) < c.staleAfter {
			value := e.value
			c.mu.Unlock()
			atomic.AddInt64(&c.hits, 1)
			c.log.Debug().Str("key", key).Msg("cache hit")
			return Result{Data: value}
		}
	}
	c.mu.Unlock()
	atomic.AddInt64(&c.misses, 1)
	c.log.Debug().Str("key", key).Bool("stale", ok).Msg("cache miss")

	value, err, _ := c.group.Do(key, func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		// Refetch fallido: el último valor bueno sigue visible.
		c.mu.RLock()
		prev, had := c.entries[key]
		c.mu.RUnlock()
		if had {
			return Result{Data: prev.value, Err: err, Stale: true}
		}
		return Result{Err: err}
	}

	c.mu.Lock()
	c.entries[key] = &entry{value: value, fetchedAt: time.Now(), lastAccess: time.Now()}
	c.mu.Unlock()
	return Result{Data: value}
}

// Peek devuelve el valor cacheado sin disparar red (puede estar vencido).
func (c *QueryCache) Peek(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Invalidate marca como vencidas todas las entradas cuya clave empiece por
// pattern y devuelve cuántas afectó. El dato se conserva para SWR; el próximo
// Fetch de cada clave hará refetch.
func (c *QueryCache) Invalidate(pattern string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for key, e := range c.entries {
		if strings.HasPrefix(key, pattern) {
			e.fetchedAt = time.Time{}
			n++
		}
	}
	c.log.Debug().Str("pattern", pattern).Int("affected", n).Msg("invalidación de caché")
	return n
}

// Clear vacía la caché por completo (logout).
func (c *QueryCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
	c.log.Info().Msg("caché limpiada")
}

// Stats devuelve contadores acumulados de aciertos y fallos.
func (c *QueryCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Stop detiene la goroutine de limpieza. Idempotente.
func (c *QueryCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// sweep elimina periódicamente las entradas sin acceso reciente.
func (c *QueryCache) sweep() {
	ticker := time.NewTicker(defaultSweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.collect(time.Now())
		}
	}
}

// collect borra entradas cuyo último acceso supera la ventana de GC.
func (c *QueryCache) collect(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if now.Sub(e.lastAccess) > c.gcAfter {
			delete(c.entries, key)
		}
	}
}
