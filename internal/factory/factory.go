package factory

import (
	"context"
	"strconv"

	"sitelabour/internal/abstraction"
	"sitelabour/internal/refcache"
	"sitelabour/internal/repository"
	"sitelabour/pkg/constant"
	"sitelabour/pkg/database"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type Factory struct {
	Db *gorm.DB

	DbRedis *redis.Client

	RefCache *refcache.Service

	Repository_initiated
}

type Repository_initiated struct {
	UserRepository              repository.User
	RoleRepository              repository.Role
	ProjectRepository           repository.Project
	ProjectAssignmentRepository repository.ProjectAssignment
	LabourTeamRepository        repository.LabourTeam
	LabourTypeRepository        repository.LabourType
	AttendanceRepository        repository.Attendance
	WorkReportRepository        repository.WorkReport
	BoardRepository             repository.Board
}

func NewFactory() *Factory {
	f := &Factory{}
	f.SetupDb()
	f.SetupDbRedis()
	f.SetupRepository()
	f.SetupRefCache()
	return f
}

func (f *Factory) SetupDb() {
	db, err := database.Connection("MYSQL")
	if err != nil {
		panic("Failed setup db, connection is undefined")
	}
	f.Db = db
}

func (f *Factory) SetupDbRedis() {
	dbRedis := database.InitRedis()
	f.DbRedis = dbRedis
}

func (f *Factory) SetupRepository() {
	if f.Db == nil {
		panic("Failed setup repository, db is undefined")
	}

	f.UserRepository = repository.NewUser(f.Db)
	f.RoleRepository = repository.NewRole(f.Db)
	f.ProjectRepository = repository.NewProject(f.Db)
	f.ProjectAssignmentRepository = repository.NewProjectAssignment(f.Db)
	f.LabourTeamRepository = repository.NewLabourTeam(f.Db)
	f.LabourTypeRepository = repository.NewLabourType(f.Db)
	f.AttendanceRepository = repository.NewAttendance(f.Db)
	f.WorkReportRepository = repository.NewWorkReport(f.Db)
	f.BoardRepository = repository.NewBoard(f.Db)
}

func (f *Factory) SetupRefCache() {
	f.RefCache = refcache.New(
		refcache.NewRedisStore(f.DbRedis),
		refcache.RealClock(),
		constant.REFCACHE_TTL,
		f.referenceLoader,
	)
}

// referenceLoader pulls all three reference collections in one pass.
// Engineers with assignments see only their projects; everyone else sees all.
func (f *Factory) referenceLoader(ctx context.Context, userID string) (*refcache.Snapshot, error) {
	dbCtx := new(abstraction.Context)

	var projects []refcache.Project
	if uid, err := strconv.Atoi(userID); err == nil {
		assignments, err := f.ProjectAssignmentRepository.FindByUserId(dbCtx, uid)
		if err != nil {
			return nil, err
		}
		if len(assignments) > 0 {
			var ids []int
			for _, a := range assignments {
				ids = append(ids, a.ProjectId)
			}
			assigned, err := f.ProjectRepository.FindByIds(dbCtx, ids)
			if err != nil {
				return nil, err
			}
			for _, p := range assigned {
				projects = append(projects, refcache.Project{ID: strconv.Itoa(p.ID), Name: p.Name})
			}
		}
	}
	if projects == nil {
		all, err := f.ProjectRepository.FindAllActive(dbCtx)
		if err != nil {
			return nil, err
		}
		for _, p := range all {
			projects = append(projects, refcache.Project{ID: strconv.Itoa(p.ID), Name: p.Name})
		}
	}

	teamRows, err := f.LabourTeamRepository.FindAllActive(dbCtx)
	if err != nil {
		return nil, err
	}
	var teams []refcache.Team
	for _, t := range teamRows {
		teams = append(teams, refcache.Team{ID: strconv.Itoa(t.ID), Name: t.Name})
	}

	typeRows, err := f.LabourTypeRepository.FindAllActive(dbCtx)
	if err != nil {
		return nil, err
	}
	typesByTeam := make(map[string][]refcache.LabourType)
	for _, t := range typeRows {
		teamKey := strconv.Itoa(t.TeamId)
		typesByTeam[teamKey] = append(typesByTeam[teamKey], refcache.LabourType{
			ID:       strconv.Itoa(t.ID),
			TeamID:   teamKey,
			TypeName: t.TypeName,
		})
	}

	return &refcache.Snapshot{
		Projects:    projects,
		Teams:       teams,
		TypesByTeam: typesByTeam,
	}, nil
}
