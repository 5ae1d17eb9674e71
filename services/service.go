package services

import (
	Config "authorization-engine/config"
	"authorization-engine/database"
	"authorization-engine/utility/appError"
	"authorization-engine/utility/cache"
)

// BaseService ...
type BaseService struct {
	Cache      *cache.Memory
	Config     Config.Data
	Repository database.IRepository
}

func serviceError(status int, errType string, err error) error {
	return appError.Err{
		ErrCode: status,
		ErrType: errType,
		Err:     err,
	}
}
