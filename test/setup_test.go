package test

import (
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"authorization-engine/config"
	"authorization-engine/controllers"
	"authorization-engine/database"
	"authorization-engine/dto"
	"authorization-engine/middlewares"
	"authorization-engine/model"
	"authorization-engine/utility/cache"
	"authorization-engine/utility/logger"
	"authorization-engine/utility/permissions"
	utilityValidator "authorization-engine/utility/validator"

	"github.com/stretchr/testify/require"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	validation "gopkg.in/go-playground/validator.v9"
)

//Suite ...
type Suite struct {
	suite.Suite
	DB       *gorm.DB
	Database database.Database
	Config   config.Data
	Router   *mux.Router
}

var (
	once                  sync.Once
	purgeInterval         = 5 * time.Second
	cacheDuration         = 60 * time.Second
	authCache             = cache.Initialize(cacheDuration, purgeInterval)
	testValidator         = validation.New()
	testAccountRepository database.AccountRepository

	tellerMaker = dto.MakerInfo{
		MakerID:    "EMP-1001",
		MakerName:  "Janet Wanjiru",
		BranchCode: "BR-014",
		Role:       model.Role.TELLER,
	}
	supervisorChecker = "EMP-2002"

	testAccounts = []model.Account{
		{AccountNumber: "0100345671", AccountName: "Daniel Otieno", Balance: 25000000, Status: "ACTIVE", BranchCode: "BR-014"},
		{AccountNumber: "0100345682", AccountName: "Grace Muthoni", Balance: 8000000, Status: "ACTIVE", BranchCode: "BR-014"},
		{AccountNumber: "0100345693", AccountName: "Peter Kamau", Balance: 1000000, Status: "FROZEN", BranchCode: "BR-014"},
	}
)

func TestInit(t *testing.T) {
	suite.Run(t, new(Suite))
}

// SetupSuite ...
func (s *Suite) SetupSuite() {
	dir, err := os.Getwd()
	if err != nil {
		require.NoError(s.T(), err)
	}
	db, err := gorm.Open("sqlite3", dir+"/authorizationEngine.db")
	db.DB().SetMaxOpenConns(2)
	db.LogMode(true)

	s.DB = db
	require.NoError(s.T(), err)

	if err = os.Chmod(dir+"/authorizationEngine.db", 0777); err != nil {
		require.NoError(s.T(), err)
	}

	router := mux.NewRouter()
	if _, err := utilityValidator.CustomizeMessages(testValidator); err != nil {
		require.NoError(s.T(), err)
	}
	Config := config.Data{
		AppPort:                  "9000",
		ServiceName:              "authorization-engine",
		AuthenticatorKey:         "LS0tLS1CRUdJTiBQVUJMSUMgS0VZLS0tLS0KTUlJQklqQU5CZ2txaGtpRzl3MEJBUUVGQUFPQ0FROEFNSUlCQ2dLQ0FRRUE0ZjV3ZzVsMmhLc1RlTmVtL1Y0MQpmR25KbTZnT2Ryajh5bTNyRmtFVS93VDhSRHRuU2dGRVpPUXBIRWdRN0pMMzh4VWZVMFkzZzZhWXc5UVQwaEo3Cm1DcHo5RXI1cUxhTVhKd1p4ekh6QWFobGZBMGljcWFidkpPTXZRdHpENnVRdjZ3UEV5WnREVFdpUWk5QVh3QnAKSHNzUG5wWUdJbjIwWlp1TmxYMkJyQ2xjaUhoQ1BVSUlaT1FuL01tcVREMzFqU3lqb1FvVjdNaGhNVEFUS0p4MgpYckhoUisxRGNLSnpRQlNUQUducFlWYXFwc0FSYXArbndSaXByM25VVHV4eUdvaEJUU21qSjJ1c1NlUVhISTNiCk9ESVJlMUF1VHlIY2VBYmV3bjhiNDYyeUVXS0FSZHBkOUFqUVc1U0lWUGZkc3o1QjZHbFlRNUxkWUt0em5UdXkKN3dJREFRQUIKLS0tLS1FTkQgUFVCTElDIEtFWS0tLS0t",
		ExpireCacheDuration:      400,
		PurgeCacheInterval:       60,
		RequestTimeout:           60,
		MaxIdleConns:             25,
		MaxOpenConns:             50,
		ConnMaxLifetime:          300,
		PendingSweepCronInterval: "@every 10m",
		PendingReviewSLA:         30,
	}

	Database := database.Database{
		Config: Config,
		DB:     s.DB,
	}

	s.Database = Database
	s.Config = Config
	s.Router = router

	testAccountRepository = database.AccountRepository{
		QueueRepository: database.QueueRepository{
			BaseRepository: database.BaseRepository{
				Database: Database,
			},
		},
	}

	s.RegisterRoutes(router, testValidator)
}

func (s *Suite) SetupTest() {
	s.RunMigration()
	s.DBSeeder()
}

func (s *Suite) TearDownTest() {
	s.DB.DropTableIfExists(&model.Transaction{}, &model.QueueItem{}, &model.Account{}, &model.FeeScheduleEntry{}, &model.ThresholdRule{})
}

// RegisterRoutes ...
func (s *Suite) RegisterRoutes(router *mux.Router, validator *validation.Validate) {

	once.Do(func() {
		baseRepository := database.BaseRepository{Database: s.Database}
		queueRepository := database.QueueRepository{BaseRepository: baseRepository}
		accountRepository := database.AccountRepository{QueueRepository: queueRepository}
		queueController := controllers.NewQueueController(authCache, s.Config, validator, &accountRepository)
		apiRouter := router.PathPrefix("").Subrouter()

		var requestTimeout = time.Duration(s.Config.RequestTimeout) * time.Second
		apiRouter.HandleFunc("/queue/operations", middlewares.NewMiddleware(s.Config, queueController.SubmitOperation).ValidateAuthToken(permissions.All["SubmitOperation"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPost)
		apiRouter.HandleFunc("/queue/operations/{queueId}", middlewares.NewMiddleware(s.Config, queueController.GetQueueItem).ValidateAuthToken(permissions.All["GetQueueItem"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
	})
}

// RunMigration ... This creates corresponding tables for models on the db for testing
func (s *Suite) RunMigration() {
	s.DB.AutoMigrate(&model.Account{}, &model.Transaction{}, &model.QueueItem{}, &model.FeeScheduleEntry{}, &model.ThresholdRule{})
}

// DBSeeder .. This seeds policy data and test accounts into the database for testing
func (s *Suite) DBSeeder() {
	s.Database.SeedPolicyData()

	for _, account := range testAccounts {
		if err := s.DB.FirstOrCreate(&account, model.Account{AccountNumber: account.AccountNumber}).Error; err != nil {
			logger.Error("Error with creating account record %s : %s", account.AccountNumber, err)
		}
	}
	logger.Info("Test accounts seeded successfully")
}

func (s *Suite) accountByNumber(accountNumber string) model.Account {
	account := model.Account{}
	require.NoError(s.T(), testAccountRepository.GetByAccountNumber(accountNumber, &account))
	return account
}

func (s *Suite) postingsForQueueID(queueID string) []model.Transaction {
	postings := []model.Transaction{}
	require.NoError(s.T(), testAccountRepository.FetchByFieldName(&model.Transaction{QueueID: queueID}, &postings))
	return postings
}

func (s *Suite) queueItemByID(queueID string) model.QueueItem {
	item := model.QueueItem{}
	require.NoError(s.T(), testAccountRepository.GetByQueueID(queueID, &item))
	return item
}
