package config

import "main/utils"

// Backend names accepted by STORAGE_BACKEND.
const (
	BackendFile   = "file"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type StorageConfig struct {
	Backend string

	// file backend
	DataDir string

	// mongo backend
	MongoURI       string
	DatabaseName   string
	CollectionName string

	// redis backend
	RedisURL string
}

func LoadStorageConfig() StorageConfig {
	return StorageConfig{
		Backend:        utils.GetEnvAsString("STORAGE_BACKEND", BackendFile),
		DataDir:        utils.GetEnvAsString("DATA_DIR", ".studytracker"),
		MongoURI:       utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:   utils.GetEnvAsString("MONGO_DB", "studytracker"),
		CollectionName: utils.GetEnvAsString("KV_COLLECTION", "kvstore"),
		RedisURL:       utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/0"),
	}
}
