package general

import (
	"context"
	"encoding/json"
	"strconv"

	"sitelabour/pkg/constant"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func GenerateRedisKeyUserLogin(userId int) string {
	return constant.REDIS_KEY_USER_LOGIN + strconv.Itoa(userId)
}

func GetRedisUUIDArray(rdb *redis.Client, key string) []string {
	val, err := rdb.Get(context.Background(), key).Result()
	if err != nil {
		return nil
	}
	var data []string
	if err = json.Unmarshal([]byte(val), &data); err != nil {
		logrus.Errorf("malformed redis uuid array at %s: %s", key, err.Error())
		return nil
	}
	return data
}

func AppendUUIDToRedisArray(rdb *redis.Client, key string, uuid string) {
	data := GetRedisUUIDArray(rdb, key)
	data = append(data, uuid)
	raw, err := json.Marshal(data)
	if err != nil {
		logrus.Errorf("marshal redis uuid array at %s: %s", key, err.Error())
		return
	}
	if err = rdb.Set(context.Background(), key, string(raw), 0).Err(); err != nil {
		logrus.Errorf("set redis uuid array at %s: %s", key, err.Error())
	}
}

func RemoveUUIDFromRedisArray(rdb *redis.Client, key string, uuid string) {
	data := GetRedisUUIDArray(rdb, key)
	var kept []string
	for _, v := range data {
		if v != uuid {
			kept = append(kept, v)
		}
	}
	raw, err := json.Marshal(kept)
	if err != nil {
		logrus.Errorf("marshal redis uuid array at %s: %s", key, err.Error())
		return
	}
	if err = rdb.Set(context.Background(), key, string(raw), 0).Err(); err != nil {
		logrus.Errorf("set redis uuid array at %s: %s", key, err.Error())
	}
}

func RemoveDuplicateArrayInt(values []int) []int {
	seen := make(map[int]bool, len(values))
	var result []int
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
