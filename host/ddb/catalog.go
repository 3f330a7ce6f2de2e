/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/JayachandraA/Reusable/errors"
	"github.com/JayachandraA/Reusable/host"
	"github.com/JayachandraA/Reusable/host/template"
)

const (
	kindTemplate   = "TEMPLATE"
	kindSceneGraph = "SCENEGRAPH"
	bodySortKey    = "BODY"
)

// catalogItem is the stored form of one document.
type catalogItem struct {
	PK         string           `json:"PK"`
	SK         string           `json:"SK"`
	Name       string           `json:"Name"`
	Kind       string           `json:"Kind"`
	Body       string           `json:"Body"`
	ModifiedAt *strfmt.DateTime `json:"ModifiedAt,omitempty"`
}

// Catalog implements host.ResourceLoader and host.SceneGraphLoader backed by
// a DynamoDB table of YAML documents.
type Catalog struct {
	client    *sdk.Client
	tableName string
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	// Load the custom AWS configuration using static credentials
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewCatalog constructs a Catalog over the given table.
func NewCatalog(awsAccessKey, awsSecretKey, awsRegion, tableName string) (*Catalog, error) {
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	return &Catalog{
		client:    client,
		tableName: tableName,
	}, nil
}

func partitionKey(kind, name string) string {
	return kind + "#" + name
}

func (c *Catalog) getItem(ctx context.Context, kind, name string) (*catalogItem, error) {
	out, err := c.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &c.tableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: partitionKey(kind, name)},
			"SK": &types.AttributeValueMemberS{Value: bodySortKey},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError("template catalog", name)
	}

	item := new(catalogItem)
	if err := attributevalue.UnmarshalMap(out.Item, item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog item: %w", err)
	}
	return item, nil
}

// Load fetches, parses, and materializes the named template.
func (c *Catalog) Load(name string, owner any) (any, []any, error) {
	item, err := c.getItem(context.TODO(), kindTemplate, name)
	if err != nil {
		return nil, nil, err
	}
	doc, err := template.Parse([]byte(item.Body))
	if err != nil {
		return nil, nil, errors.NewInvalidResourceError(name, err.Error())
	}
	return template.Build(doc, owner)
}

// LoadSceneGraph fetches and parses the named scene-graph document.
func (c *Catalog) LoadSceneGraph(name string) (host.SceneGraph, error) {
	item, err := c.getItem(context.TODO(), kindSceneGraph, name)
	if err != nil {
		return nil, err
	}
	doc, err := template.ParseSceneGraph([]byte(item.Body))
	if err != nil {
		return nil, errors.NewInvalidResourceError(name, err.Error())
	}
	return template.NewGraph(doc), nil
}

// PutTemplate stores a template body under the given name. Used when seeding
// a catalog from a template directory.
func (c *Catalog) PutTemplate(ctx context.Context, name, body string) error {
	return c.put(ctx, kindTemplate, name, body)
}

// PutSceneGraph stores a scene-graph body under the given name.
func (c *Catalog) PutSceneGraph(ctx context.Context, name, body string) error {
	return c.put(ctx, kindSceneGraph, name, body)
}

func (c *Catalog) put(ctx context.Context, kind, name, body string) error {
	now := strfmt.DateTime(time.Now().UTC())
	item := catalogItem{
		PK:         partitionKey(kind, name),
		SK:         bodySortKey,
		Name:       name,
		Kind:       kind,
		Body:       body,
		ModifiedAt: &now,
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog item: %w", err)
	}

	_, err = c.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &c.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem error: %w", err)
	}
	return nil
}
