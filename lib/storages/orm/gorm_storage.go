package orm

import (
	"log"
	"os"
	"reflect"
	"sync"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/pescuma/fontvault/lib/consoles"
	"github.com/pescuma/fontvault/lib/model"
	"github.com/pescuma/fontvault/lib/storages"
)

type gormStorage struct {
	mutex   sync.RWMutex
	db      *gorm.DB
	console consoles.Console

	fonts     *model.FontFiles
	families  *model.Families
	archives  *model.Archives
	publishes *model.Publishes
	config    *map[string]string

	sqlConfigs   map[string]*sqlConfig
	sqlFonts     map[string]*sqlFontFile
	sqlFamilies  map[string]*sqlFamily
	sqlArchives  map[string]*sqlArchive
	sqlPublishes map[string]*sqlPublish
}

func NewGormStorage(d gorm.Dialector, console consoles.Console) (storages.Storage, error) {
	l := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{
		Logger: l,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&sqlConfig{},
		&sqlFontFile{},
		&sqlFamily{},
		&sqlArchive{},
		&sqlPublish{},
	)
	if err != nil {
		return nil, err
	}

	return &gormStorage{
		db:      db,
		console: console,
	}, nil
}

func (s *gormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func createCache[T sqlTable](rows []T) map[string]T {
	return lo.Associate(rows, func(i T) (string, T) {
		return i.CacheKey(), i
	})
}

func (s *gormStorage) LoadFontFiles() (*model.FontFiles, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.fonts != nil {
		return s.fonts, nil
	}

	s.console.Printf("Loading font files...\n")

	result := model.NewFontFiles()

	var rows []*sqlFontFile
	err := s.db.Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	s.sqlFonts = createCache(rows)

	for _, row := range rows {
		result.AddFromStorage(newFontFile(row))
	}

	s.fonts = result
	return result, nil
}

func (s *gormStorage) WriteFontFiles(files *model.FontFiles) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.sqlFonts == nil {
		s.sqlFonts = map[string]*sqlFontFile{}
	}

	changed := prepareChanges(files.List(), newSqlFontFile, &s.sqlFonts)

	err := s.upsert(changed)
	if err != nil {
		return err
	}

	addList(&s.sqlFonts, changed)

	keep := lo.SliceToMap(files.List(), func(f *model.FontFile) (string, bool) {
		return f.Path, true
	})

	err = deleteStale(s.db, &s.sqlFonts, keep, "path", &sqlFontFile{})
	if err != nil {
		return err
	}

	s.fonts = files
	return nil
}

func (s *gormStorage) LoadFamilies() (*model.Families, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.families != nil {
		return s.families, nil
	}

	s.console.Printf("Loading families...\n")

	result := model.NewFamilies()

	var rows []*sqlFamily
	err := s.db.Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	s.sqlFamilies = createCache(rows)

	fonts, err := s.loadFontFilesLocked()
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result.AddFromStorage(model.NewFamily(row.Name, model.ID(row.ID)))
	}

	for _, font := range fonts.List() {
		if font.Family == "" {
			continue
		}

		family := result.Get(font.Family)
		if family != nil {
			family.Fonts = append(family.Fonts, font)
		}
	}

	s.families = result
	return result, nil
}

func (s *gormStorage) WriteFamilies(families *model.Families) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.sqlFamilies == nil {
		s.sqlFamilies = map[string]*sqlFamily{}
	}

	changed := prepareChanges(families.List(), newSqlFamily, &s.sqlFamilies)

	err := s.upsert(changed)
	if err != nil {
		return err
	}

	addList(&s.sqlFamilies, changed)

	keep := lo.SliceToMap(families.List(), func(f *model.Family) (string, bool) {
		return f.Name, true
	})

	err = deleteStale(s.db, &s.sqlFamilies, keep, "name", &sqlFamily{})
	if err != nil {
		return err
	}

	s.families = families
	return nil
}

func (s *gormStorage) LoadArchives() (*model.Archives, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.archives != nil {
		return s.archives, nil
	}

	s.console.Printf("Loading archives...\n")

	result := model.NewArchives()

	var rows []*sqlArchive
	err := s.db.Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	s.sqlArchives = createCache(rows)

	for _, row := range rows {
		result.AddFromStorage(newArchive(row))
	}

	s.archives = result
	return result, nil
}

func (s *gormStorage) WriteArchives(archives *model.Archives) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.sqlArchives == nil {
		s.sqlArchives = map[string]*sqlArchive{}
	}

	changed := prepareChanges(archives.List(), newSqlArchive, &s.sqlArchives)

	err := s.upsert(changed)
	if err != nil {
		return err
	}

	addList(&s.sqlArchives, changed)

	keep := lo.SliceToMap(archives.List(), func(a *model.Archive) (string, bool) {
		return a.FamilyName, true
	})

	err = deleteStale(s.db, &s.sqlArchives, keep, "family_name", &sqlArchive{})
	if err != nil {
		return err
	}

	s.archives = archives
	return nil
}

func (s *gormStorage) LoadPublishes() (*model.Publishes, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.publishes != nil {
		return s.publishes, nil
	}

	s.console.Printf("Loading publish history...\n")

	result := model.NewPublishes()

	var rows []*sqlPublish
	err := s.db.Find(&rows).Error
	if err != nil {
		return nil, err
	}

	s.sqlPublishes = createCache(rows)

	for _, row := range rows {
		result.AddFromStorage(newPublish(row))
	}

	s.publishes = result
	return result, nil
}

func (s *gormStorage) WritePublish(publish *model.Publish) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.sqlPublishes == nil {
		s.sqlPublishes = map[string]*sqlPublish{}
	}

	row := newSqlPublish(publish)
	if !prepareChange(&s.sqlPublishes, row) {
		return nil
	}

	err := s.upsert([]*sqlPublish{row})
	if err != nil {
		return err
	}

	if s.publishes != nil {
		s.publishes.Add(publish)
	}

	return nil
}

func (s *gormStorage) LoadConfig() (*map[string]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.config != nil {
		return s.config, nil
	}

	result := map[string]string{}

	var rows []*sqlConfig
	err := s.db.Find(&rows).Error
	if err != nil {
		return nil, err
	}

	s.sqlConfigs = createCache(rows)

	for _, row := range rows {
		result[row.Key] = row.Value
	}

	s.config = &result
	return &result, nil
}

func (s *gormStorage) WriteConfig() error {
	if s.config == nil {
		return nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.sqlConfigs == nil {
		s.sqlConfigs = map[string]*sqlConfig{}
	}

	var rows []*sqlConfig
	for k, v := range *s.config {
		row := newSqlConfig(k, v)
		if prepareChange(&s.sqlConfigs, row) {
			rows = append(rows, row)
		}
	}

	err := s.upsert(rows)
	if err != nil {
		return err
	}

	addList(&s.sqlConfigs, rows)

	return nil
}

func (s *gormStorage) loadFontFilesLocked() (*model.FontFiles, error) {
	if s.fonts != nil {
		return s.fonts, nil
	}

	result := model.NewFontFiles()

	var rows []*sqlFontFile
	err := s.db.Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	s.sqlFonts = createCache(rows)

	for _, row := range rows {
		result.AddFromStorage(newFontFile(row))
	}

	s.fonts = result
	return result, nil
}

func (s *gormStorage) upsert(rows any) error {
	value := reflect.ValueOf(rows)
	if value.Kind() == reflect.Slice && value.Len() == 0 {
		return nil
	}

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc:         func() time.Time { return now },
		CreateBatchSize: 300,
	})

	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(rows).Error
}

type sqlTable interface {
	CacheKey() string
}

func addList[T sqlTable](target *map[string]T, toAdd []T) {
	for _, v := range toAdd {
		(*target)[v.CacheKey()] = v
	}
}

func prepareChanges[S sqlTable, M any](models []M, toSql func(M) S, cache *map[string]S) []S {
	var result []S
	for _, m := range models {
		s := toSql(m)
		if prepareChange(cache, s) {
			result = append(result, s)
		}
	}
	return result
}

func prepareChange[T sqlTable](byID *map[string]T, n T) bool {
	o, ok := (*byID)[n.CacheKey()]
	if ok {
		ro := reflect.Indirect(reflect.ValueOf(o))
		rn := reflect.Indirect(reflect.ValueOf(n))

		rn.FieldByName("CreatedAt").Set(ro.FieldByName("CreatedAt"))
		rn.FieldByName("UpdatedAt").Set(ro.FieldByName("UpdatedAt"))
	}

	if reflect.DeepEqual(n, o) {
		return false
	} else {
		(*byID)[n.CacheKey()] = n
		return true
	}
}

func deleteStale[T sqlTable](db *gorm.DB, cache *map[string]T, keep map[string]bool, keyColumn string, table any) error {
	var stale []string
	for key := range *cache {
		if !keep[key] {
			stale = append(stale, key)
		}
	}

	if len(stale) == 0 {
		return nil
	}

	err := db.Where(keyColumn+" IN ?", stale).Delete(table).Error
	if err != nil {
		return err
	}

	for _, key := range stale {
		delete(*cache, key)
	}

	return nil
}
