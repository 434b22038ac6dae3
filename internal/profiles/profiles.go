// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package profiles defines the carcert command sets: console, sender and
// receiver. Each is a list of menu entries bound to contract functions with
// built-in argument values.
package profiles

import (
	"errors"
	"fmt"

	"github.com/carpartcert/carcert-cli/internal/app"
	"github.com/carpartcert/carcert-cli/models"
)

const (
	Console  = "console"
	Sender   = "sender"
	Receiver = "receiver"
)

var ErrUnknownProfile = errors.New("unknown profile")

// Field is one positional argument with its built-in value.
type Field struct {
	Name    string
	Default string
}

// Invocation binds a menu entry to a contract function.
type Invocation struct {
	Kind     models.CallKind
	Function string
	Fields   []Field
	// Confirm is printed after a successful submit.
	Confirm string
	// Echo prints the function and its arguments before the outcome.
	Echo bool
}

// Entry is one menu line. A nil Invocation marks the exit entry.
type Entry struct {
	Key        string
	Label      string
	Invocation *Invocation
}

// Profile is a named command set with its default wallet identity.
type Profile struct {
	Name     string
	Identity string
	Entries  []Entry
}

var (
	createdAsset = models.Asset{
		ID:                 "674.24354-2754962514",
		Car:                "Lamborghini Aventador",
		Brand:              "Lamborghini",
		ProductionDate:     "15/11/2021",
		ProductionLocation: "Sant Agata Bolognese, Italy",
		Description:        "Side radiator for cooling",
	}
	updatedAsset = models.Asset{
		ID:                 "456.56488-56464864115",
		Car:                "Renault 5, Renault 4",
		Brand:              "Renault",
		ProductionDate:     "10/06/1996",
		ProductionLocation: "Montbéliard, France",
		Description:        "Yellow Headlights",
	}
	readAssetID = "254.51488-54875265847"
)

func assetFields(a models.Asset) []Field {
	values := a.Args()
	fields := make([]Field, len(models.AssetFields))
	for i, name := range models.AssetFields {
		fields[i] = Field{Name: name, Default: values[i]}
	}
	return fields
}

func idField(id string) []Field {
	return []Field{{Name: models.AssetFieldID, Default: id}}
}

func create(echo bool) *Invocation {
	return &Invocation{Kind: models.CallSubmit, Function: "CreateAsset", Fields: assetFields(createdAsset), Confirm: app.MsgCreated, Echo: echo}
}

func update(echo bool) *Invocation {
	return &Invocation{Kind: models.CallSubmit, Function: "UpdateAsset", Fields: assetFields(updatedAsset), Confirm: app.MsgUpdated, Echo: echo}
}

func remove(echo bool) *Invocation {
	return &Invocation{Kind: models.CallSubmit, Function: "DeleteAsset", Fields: idField(createdAsset.ID), Confirm: app.MsgDeleted, Echo: echo}
}

func read() *Invocation {
	return &Invocation{Kind: models.CallEvaluate, Function: "ReadAsset", Fields: idField(readAssetID)}
}

func getAll() *Invocation {
	return &Invocation{Kind: models.CallEvaluate, Function: "GetAllAssets"}
}

func exists(echo bool) *Invocation {
	return &Invocation{Kind: models.CallEvaluate, Function: "AssetExists", Fields: idField(createdAsset.ID), Echo: echo}
}

// Lookup returns the profile called name.
func Lookup(name string) (Profile, error) {
	switch name {
	case Console:
		return Profile{
			Name:     Console,
			Identity: "appUser",
			Entries: []Entry{
				{Key: "1", Label: app.LabelCreate, Invocation: create(false)},
				{Key: "2", Label: app.LabelRead, Invocation: read()},
				{Key: "3", Label: app.LabelUpdate, Invocation: update(false)},
				{Key: "4", Label: app.LabelDelete, Invocation: remove(false)},
				{Key: "5", Label: app.LabelGetAll, Invocation: getAll()},
				{Key: "6", Label: app.LabelExists, Invocation: exists(false)},
				{Key: "7", Label: app.LabelExit},
			},
		}, nil
	case Sender:
		return Profile{
			Name:     Sender,
			Identity: "Sender",
			Entries: []Entry{
				{Key: "1", Label: app.LabelCreate, Invocation: create(true)},
				{Key: "2", Label: app.LabelUpdate, Invocation: update(true)},
				{Key: "3", Label: app.LabelDelete, Invocation: remove(true)},
				{Key: "4", Label: app.LabelExit},
			},
		}, nil
	case Receiver:
		return Profile{
			Name:     Receiver,
			Identity: "Receiver",
			Entries: []Entry{
				{Key: "1", Label: app.LabelRead, Invocation: read()},
				{Key: "2", Label: app.LabelGetAll, Invocation: getAll()},
				{Key: "3", Label: app.LabelExists, Invocation: exists(true)},
				{Key: "4", Label: app.LabelExit},
			},
		}, nil
	}

	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// Names lists the available profiles.
func Names() []string {
	return []string{Console, Sender, Receiver}
}
