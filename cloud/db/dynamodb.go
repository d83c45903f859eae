// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/guregu/dynamo"
)

type DynamoDBCatalog struct {
	svc           *dynamodb.DynamoDB
	db            *dynamo.DB
	texturesTable dynamo.Table
}

func NewDynamoDBCatalog(session *session.Session, stage string) (*DynamoDBCatalog, error) {
	ddb := &DynamoDBCatalog{svc: dynamodb.New(session)}
	ddb.db = dynamo.NewFromIface(ddb.svc)
	ddb.texturesTable = ddb.db.Table("soar-" + stage + "-textures")
	return ddb, nil
}

// PutTexture records a texture unless a newer one with the same key exists.
func (ddb *DynamoDBCatalog) PutTexture(texture Texture) error {
	err := ddb.texturesTable.Put(texture).If("attribute_not_exists(created) OR created < ?", texture.Created).Run()
	if err != nil {
		if _, ok := err.(*dynamodb.ConditionalCheckFailedException); ok {
			return nil
		}
	}
	return err
}

func (ddb *DynamoDBCatalog) ReadTextures() (textures []Texture, err error) {
	err = ddb.texturesTable.Scan().All(&textures)
	return
}

func (ddb *DynamoDBCatalog) ReadTexturesByRecipe(recipe string) (textures []Texture, err error) {
	query := ddb.texturesTable.Get("recipe", recipe).Iter()

	for {
		var texture Texture
		if !query.Next(&texture) {
			err = query.Err()
			return
		}
		textures = append(textures, texture)
	}
}
