package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/redis/go-redis/v9"
)

// DefaultChannel canal pub/sub cuando ALERT_CHANNEL no está definido.
const DefaultChannel = "inventory.alerts"

const (
	alertKeyPrefix  = "inventory:alert:"
	defaultDedupTTL = time.Hour
)

var _ inventory.AlertNotifier = (*RedisNotifier)(nil)

// alertMessage mensaje publicado en el canal.
type alertMessage struct {
	SiteID      string    `json:"site_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Kind        string    `json:"kind"`
	ScannedAt   time.Time `json:"scanned_at"`
}

// RedisNotifier publica alertas en un canal pub/sub. Cada (sitio, producto, tipo) se publica
// una sola vez por ventana TTL: los escaneos sin estado no repiten el mismo aviso.
type RedisNotifier struct {
	client  *redis.Client
	channel string
	ttl     time.Duration
}

// NewRedisNotifier construye el notificador. channel vacío y ttl <= 0 usan los valores por defecto.
func NewRedisNotifier(client *redis.Client, channel string, ttl time.Duration) *RedisNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &RedisNotifier{client: client, channel: channel, ttl: ttl}
}

// Notify publica solo las alertas que no se publicaron dentro de la ventana TTL.
// Si la publicación falla, la clave de deduplicación se borra y la alerta queda pendiente.
func (n *RedisNotifier) Notify(ctx context.Context, siteID string, alerts []entity.Alert) error {
	for _, a := range alerts {
		key := dedupKey(siteID, a)
		fresh, err := n.client.SetNX(ctx, key, 1, n.ttl).Result()
		if err != nil {
			return fmt.Errorf("redis dedup: %w", err)
		}
		if !fresh {
			continue
		}
		payload, err := json.Marshal(alertMessage{
			SiteID:      siteID,
			ProductID:   a.ProductID,
			ProductName: a.ProductName,
			Kind:        string(a.Kind),
			ScannedAt:   a.ScannedAt,
		})
		if err != nil {
			return err
		}
		if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
			// liberar la clave: el próximo escaneo debe reintentar la alerta
			if delErr := n.client.Del(context.WithoutCancel(ctx), key).Err(); delErr != nil {
				return errors.Join(fmt.Errorf("redis publish: %w", err), fmt.Errorf("redis liberar %s: %w", key, delErr))
			}
			return fmt.Errorf("redis publish: %w", err)
		}
	}
	return nil
}

func dedupKey(siteID string, a entity.Alert) string {
	return alertKeyPrefix + siteID + ":" + a.ProductID + ":" + string(a.Kind)
}
