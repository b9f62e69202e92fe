package models

import (
	"time"
)

type Project struct {
	ID             uint64     `gorm:"primarykey" json:"projectId"`
	UserID         uint64     `gorm:"not null;index" json:"projectUserId"`
	Name           string     `gorm:"type:varchar(255);not null" json:"projectName"`
	Description    string     `gorm:"type:text;not null" json:"projectDescription"`
	Tech           string     `gorm:"type:varchar(255)" json:"projectTech"`
	Status         string     `gorm:"type:varchar(50)" json:"projectStatus"`
	Manager        string     `gorm:"type:varchar(255)" json:"projectManager"`
	Lead           string     `gorm:"type:varchar(255)" json:"projectLead"`
	Client         string     `gorm:"type:varchar(255)" json:"projectClient"`
	ManagementTool string     `gorm:"type:varchar(100)" json:"managementTool"`
	ManagementURL  string     `gorm:"column:management_url;type:varchar(2048)" json:"managementUrl"`
	RepoTool       string     `gorm:"type:varchar(100)" json:"repoTool"`
	RepoURL        string     `gorm:"column:repo_url;type:varchar(2048)" json:"repoUrl"`
	StartDate      *time.Time `json:"projectStartDate"`
	DeadlineDate   *time.Time `json:"projectDeadlineDate"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
