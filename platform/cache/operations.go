package cache

import (
	"github.com/gomodule/redigo/redis"
)

// The open-room directory lives here: a set of joinable room ids plus one
// hash per room with its lobby metadata (name, seats, status).

func HSET(key string, field string, value interface{}, conn *redis.Conn) error {
	_, err := (*conn).Do("HSET", key, field, value)
	return err
}

func HGET(key string, field string, conn *redis.Conn) (string, error) {
	return redis.String((*conn).Do("HGET", key, field))
}

func Del(key string, conn *redis.Conn) error {
	_, err := (*conn).Do("DEL", key)
	return err
}

func SADD(key string, member string, conn *redis.Conn) error {
	_, err := (*conn).Do("SADD", key, member)
	return err
}

func SREM(key string, member string, conn *redis.Conn) error {
	_, err := (*conn).Do("SREM", key, member)
	return err
}

func SMEMBERS(key string, conn *redis.Conn) ([]string, error) {
	return redis.Strings((*conn).Do("SMEMBERS", key))
}

func SRANDMEMBER(key string, conn *redis.Conn) (string, error) {
	return redis.String((*conn).Do("SRANDMEMBER", key))
}
