package config

import (
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

//Data : config data
type Data struct {
	AppPort                  string `mapstructure:"appPort"  yaml:"appPort,omitempty"`
	ServiceName              string `mapstructure:"serviceName"  yaml:"serviceName,omitempty"`
	BasePath                 string `mapstructure:"basePath"  yaml:"basePath,omitempty"`
	DBUser                   string `mapstructure:"dbUser"  yaml:"dbUser,omitempty"`
	DBPassword               string `mapstructure:"dbPassword"  yaml:"dbPassword,omitempty"`
	DBHost                   string `mapstructure:"dbHost"  yaml:"dbHost,omitempty"`
	DBName                   string `mapstructure:"dbName"  yaml:"dbName,omitempty"`
	DBMigrationPath          string `mapstructure:"dbMigrationPath"  yaml:"dbMigrationPath,omitempty"`
	AuthenticatorKey         string `mapstructure:"authenticatorKey"  yaml:"authenticatorKey,omitempty"`
	MaxIdleConns             int    `mapstructure:"maxIdleConns" yaml:"maxIdleConns,omitempty"`
	MaxOpenConns             int    `mapstructure:"maxOpenConns" yaml:"maxOpenConns,omitempty"`
	ConnMaxLifetime          int    `mapstructure:"connMaxLifetime" yaml:"connMaxLifetime,omitempty"`
	RequestTimeout           int    `mapstructure:"requestTimeout" yaml:"requestTimeout,omitempty"`
	ExpireCacheDuration      int    `mapstructure:"expireCacheDuration" yaml:"expireCacheDuration,omitempty"`
	PurgeCacheInterval       int    `mapstructure:"purgeCacheInterval" yaml:"purgeCacheInterval,omitempty"`
	PendingSweepCronInterval string `mapstructure:"pendingSweepCronInterval" yaml:"pendingSweepCronInterval,omitempty"`
	PendingReviewSLA         int    `mapstructure:"pendingReviewSLA" yaml:"pendingReviewSLA,omitempty"`
}

//Init : initialize data
func (c *Data) Init(configDir string) {

	dir, dirErr := os.Getwd()
	if dirErr != nil {
		log.Printf("Cannot set default input/output directory to the current working directory >> %s", dirErr)
	}

	viper.SetEnvPrefix("aue") // Prefix all env variable with AUE (AUthorization Engine)
	viper.AutomaticEnv()
	viper.BindEnv("appPort")
	viper.BindEnv("dbUser")
	viper.BindEnv("dbPassword")
	viper.BindEnv("dbHost")
	viper.BindEnv("dbName")
	viper.BindEnv("authenticatorKey")

	viper.SetConfigName("config")
	viper.AddConfigPath("../")
	viper.AddConfigPath(dir)
	viper.AddConfigPath(configDir)
	viper.WatchConfig()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			panic(fmt.Errorf("\n Configuration file not found >>%s ", err))
		} else {
			panic(fmt.Errorf("\n fatal error: could not read from config file >>%s ", err))
		}
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				panic(fmt.Errorf("\n Configuration file not found >>%s ", err))
			} else {
				panic(fmt.Errorf("\n fatal error: could not read from config file >>%s ", err))
			}
		}
		viper.Unmarshal(c)
		fmt.Println("Config file changed:", e.Name)
	})

	viper.Unmarshal(c)
	log.Println("App configuration loaded successfully!")
}
