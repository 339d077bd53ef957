package bookings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// HoldStore keeps short-lived pre-checkout seat holds in Redis. Holds are
// advisory: the booking transaction in Postgres is the decision point, so a
// lost hold can cost a user their seats but never double-book them.
type HoldStore struct {
	redis *redis.Client
}

func NewHoldStore(redisClient *redis.Client) *HoldStore {
	return &HoldStore{redis: redisClient}
}

func seatHoldKey(showtimeID, label string) string {
	return fmt.Sprintf("cinetix:seat_hold:%s:%s", showtimeID, label)
}

func holdKey(holdID string) string {
	return fmt.Sprintf("cinetix:hold:%s", holdID)
}

func holdSeatsKey(holdID string) string {
	return fmt.Sprintf("cinetix:hold_seats:%s", holdID)
}

// Checks every requested seat, then claims all of them. A single Lua call,
// so two concurrent holds for overlapping seats cannot interleave.
var holdScript = redis.NewScript(`
-- KEYS[1] = hold id
-- ARGV[1] = user id
-- ARGV[2] = showtime id
-- ARGV[3] = ttl seconds
-- ARGV[4..N] = seat labels
local hold_id = KEYS[1]
local user_id = ARGV[1]
local showtime_id = ARGV[2]
local ttl = tonumber(ARGV[3])

local conflicts = {}
for i = 4, #ARGV do
    local seat_key = "cinetix:seat_hold:" .. showtime_id .. ":" .. ARGV[i]
    if redis.call("EXISTS", seat_key) == 1 then
        table.insert(conflicts, ARGV[i])
    end
end
if #conflicts > 0 then
    return {0, unpack(conflicts)}
end

local hold_key = "cinetix:hold:" .. hold_id
local hold_seats_key = "cinetix:hold_seats:" .. hold_id

redis.call("HSET", hold_key,
    "user_id", user_id,
    "showtime_id", showtime_id,
    "seat_count", #ARGV - 3)
redis.call("EXPIRE", hold_key, ttl)

for i = 4, #ARGV do
    local seat_key = "cinetix:seat_hold:" .. showtime_id .. ":" .. ARGV[i]
    redis.call("SETEX", seat_key, ttl, user_id .. ":" .. hold_id)
    redis.call("SADD", hold_seats_key, ARGV[i])
end
redis.call("EXPIRE", hold_seats_key, ttl)

return {1}
`)

var releaseScript = redis.NewScript(`
-- KEYS[1] = hold id
-- ARGV[1] = user id (ownership check)
local hold_id = KEYS[1]
local user_id = ARGV[1]

local hold_key = "cinetix:hold:" .. hold_id
local hold_seats_key = "cinetix:hold_seats:" .. hold_id

local owner = redis.call("HGET", hold_key, "user_id")
if not owner then
    return {0, "not_found"}
end
if owner ~= user_id then
    return {0, "forbidden"}
end

local showtime_id = redis.call("HGET", hold_key, "showtime_id")
local labels = redis.call("SMEMBERS", hold_seats_key)
for i = 1, #labels do
    redis.call("DEL", "cinetix:seat_hold:" .. showtime_id .. ":" .. labels[i])
end

redis.call("DEL", hold_key)
redis.call("DEL", hold_seats_key)
return {1, #labels}
`)

// PreloadScripts loads the Lua scripts into the Redis script cache so the
// first hold does not pay the load round trip.
func (h *HoldStore) PreloadScripts(ctx context.Context) error {
	if h.redis == nil {
		return nil
	}
	if err := holdScript.Load(ctx, h.redis).Err(); err != nil {
		return fmt.Errorf("failed to load hold script: %w", err)
	}
	if err := releaseScript.Load(ctx, h.redis).Err(); err != nil {
		return fmt.Errorf("failed to load release script: %w", err)
	}
	return nil
}

// Hold atomically claims the given seats for a user. Returns the hold ID,
// or a HoldConflictError naming every seat already held.
func (h *HoldStore) Hold(ctx context.Context, userID, showtimeID uuid.UUID, labels []string, ttl time.Duration) (string, error) {
	if h.redis == nil {
		return "", fmt.Errorf("redis client not available")
	}

	holdID := uuid.New().String()
	args := make([]interface{}, 0, len(labels)+3)
	args = append(args, userID.String(), showtimeID.String(), int(ttl.Seconds()))
	for _, label := range labels {
		args = append(args, label)
	}

	result, err := holdScript.Run(ctx, h.redis, []string{holdID}, args...).Slice()
	if err != nil {
		return "", fmt.Errorf("hold script failed: %w", err)
	}
	if len(result) == 0 {
		return "", fmt.Errorf("hold script returned empty result")
	}

	if ok, _ := result[0].(int64); ok != 1 {
		conflicts := make([]string, 0, len(result)-1)
		for _, v := range result[1:] {
			if s, isString := v.(string); isString {
				conflicts = append(conflicts, s)
			}
		}
		return "", &HoldConflictError{Seats: conflicts}
	}

	return holdID, nil
}

// Release frees a hold owned by the given user.
func (h *HoldStore) Release(ctx context.Context, holdID string, userID uuid.UUID) error {
	if h.redis == nil {
		return fmt.Errorf("redis client not available")
	}

	result, err := releaseScript.Run(ctx, h.redis, []string{holdID}, userID.String()).Slice()
	if err != nil {
		return fmt.Errorf("release script failed: %w", err)
	}
	if len(result) >= 1 {
		if ok, _ := result[0].(int64); ok == 1 {
			return nil
		}
	}
	if len(result) >= 2 {
		if reason, _ := result[1].(string); reason == "forbidden" {
			return ErrForbidden
		}
	}
	return ErrHoldNotFound
}

// ReleaseSeatLabels drops the per-seat hold keys after a booking commits,
// so the seats stop showing as held.
func (h *HoldStore) ReleaseSeatLabels(ctx context.Context, showtimeID uuid.UUID, labels []string) error {
	if h.redis == nil || len(labels) == 0 {
		return nil
	}

	keys := make([]string, len(labels))
	for i, label := range labels {
		keys[i] = seatHoldKey(showtimeID.String(), label)
	}
	return h.redis.Del(ctx, keys...).Err()
}

// HeldSeats lists the seat labels currently held for a showtime.
func (h *HoldStore) HeldSeats(ctx context.Context, showtimeID uuid.UUID) ([]string, error) {
	if h.redis == nil {
		return nil, nil
	}

	prefix := fmt.Sprintf("cinetix:seat_hold:%s:", showtimeID.String())
	var labels []string
	var cursor uint64
	for {
		keys, next, err := h.redis.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan seat holds: %w", err)
		}
		for _, key := range keys {
			labels = append(labels, strings.TrimPrefix(key, prefix))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return labels, nil
}
