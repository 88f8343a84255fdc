package usecase

import (
	"sync"

	"github.com/staffloop/identity/services/org"
)

// OrgUC implements the role tree and the authorization engine.
// Structural writes serialize per institute; reads run lock-free
// against the latest committed structure.
type OrgUC struct {
	roleRepo  org.RoleRepo
	grantRepo org.GrantRepo

	mu        sync.Mutex
	instLocks map[string]*sync.Mutex
}

// NewOrgUC creates a new org usecase instance
func NewOrgUC(roleRepo org.RoleRepo, grantRepo org.GrantRepo) *OrgUC {
	return &OrgUC{
		roleRepo:  roleRepo,
		grantRepo: grantRepo,
		instLocks: make(map[string]*sync.Mutex),
	}
}

// instituteLock returns the mutex serializing structural writes for one
// institute.
func (u *OrgUC) instituteLock(instituteID string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()

	lock, ok := u.instLocks[instituteID]
	if !ok {
		lock = &sync.Mutex{}
		u.instLocks[instituteID] = lock
	}
	return lock
}
