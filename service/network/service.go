// Package network lists the networking resources of one region under one
// set of account credentials.
package network

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/aws/smithy-go"
)

// NewService creates a new network inventory service bound to the region of
// the supplied config.
func NewService(cfg aws.Config) Service {
	return &service{
		ec2Client:   ec2.NewFromConfig(cfg),
		elbv2Client: elasticloadbalancingv2.NewFromConfig(cfg),
		region:      cfg.Region,
	}
}

// collect runs a single listing call and tolerates its failure: an error is
// logged with the resource label and region, and degrades to an empty list.
// Other resource types in the same region are unaffected.
func collect[T any](region, resource string, call func() ([]T, error)) []T {
	records, err := call()
	if err != nil {
		fmt.Printf("Error retrieving %s for region %s: %s\n", resource, region, apiErrorMessage(err))
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

func apiErrorMessage(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return err.Error()
}

// CollectInventory runs all eight collectors against the bound region.
// Every field is populated even when individual collectors fail.
func (s *service) CollectInventory(ctx context.Context) Inventory {
	return Inventory{
		Vpcs:                  s.GetVpcs(ctx),
		Subnets:               s.GetSubnets(ctx),
		SecurityGroups:        s.GetSecurityGroups(ctx),
		NetworkAcls:           s.GetNetworkAcls(ctx),
		RouteTables:           s.GetRouteTables(ctx),
		VpcEndpoints:          s.GetVpcEndpoints(ctx),
		VpcPeeringConnections: s.GetVpcPeeringConnections(ctx),
		LoadBalancers:         s.GetLoadBalancers(ctx),
	}
}

// GetVpcs lists all VPCs in the region.
func (s *service) GetVpcs(ctx context.Context) []ec2types.Vpc {
	return collect(s.region, "VPCs", func() ([]ec2types.Vpc, error) {
		var vpcs []ec2types.Vpc
		input := &ec2.DescribeVpcsInput{}
		for {
			page, err := s.ec2Client.DescribeVpcs(ctx, input)
			if err != nil {
				return nil, err
			}
			vpcs = append(vpcs, page.Vpcs...)
			if page.NextToken == nil {
				return vpcs, nil
			}
			input.NextToken = page.NextToken
		}
	})
}

// GetSubnets lists all subnets in the region.
func (s *service) GetSubnets(ctx context.Context) []ec2types.Subnet {
	return collect(s.region, "subnets", func() ([]ec2types.Subnet, error) {
		var subnets []ec2types.Subnet
		input := &ec2.DescribeSubnetsInput{}
		for {
			page, err := s.ec2Client.DescribeSubnets(ctx, input)
			if err != nil {
				return nil, err
			}
			subnets = append(subnets, page.Subnets...)
			if page.NextToken == nil {
				return subnets, nil
			}
			input.NextToken = page.NextToken
		}
	})
}

// GetSecurityGroups lists all security groups in the region.
func (s *service) GetSecurityGroups(ctx context.Context) []ec2types.SecurityGroup {
	return collect(s.region, "security groups", func() ([]ec2types.SecurityGroup, error) {
		var groups []ec2types.SecurityGroup
		input := &ec2.DescribeSecurityGroupsInput{}
		for {
			page, err := s.ec2Client.DescribeSecurityGroups(ctx, input)
			if err != nil {
				return nil, err
			}
			groups = append(groups, page.SecurityGroups...)
			if page.NextToken == nil {
				return groups, nil
			}
			input.NextToken = page.NextToken
		}
	})
}

// GetNetworkAcls lists all network ACLs in the region.
func (s *service) GetNetworkAcls(ctx context.Context) []ec2types.NetworkAcl {
	return collect(s.region, "network ACLs", func() ([]ec2types.NetworkAcl, error) {
		var acls []ec2types.NetworkAcl
		input := &ec2.DescribeNetworkAclsInput{}
		for {
			page, err := s.ec2Client.DescribeNetworkAcls(ctx, input)
			if err != nil {
				return nil, err
			}
			acls = append(acls, page.NetworkAcls...)
			if page.NextToken == nil {
				return acls, nil
			}
			input.NextToken = page.NextToken
		}
	})
}

// GetRouteTables lists all route tables in the region.
func (s *service) GetRouteTables(ctx context.Context) []ec2types.RouteTable {
	return collect(s.region, "route tables", func() ([]ec2types.RouteTable, error) {
		var tables []ec2types.RouteTable
		input := &ec2.DescribeRouteTablesInput{}
		for {
			page, err := s.ec2Client.DescribeRouteTables(ctx, input)
			if err != nil {
				return nil, err
			}
			tables = append(tables, page.RouteTables...)
			if page.NextToken == nil {
				return tables, nil
			}
			input.NextToken = page.NextToken
		}
	})
}

// GetVpcEndpoints lists all VPC endpoints in the region.
func (s *service) GetVpcEndpoints(ctx context.Context) []ec2types.VpcEndpoint {
	return collect(s.region, "VPC endpoints", func() ([]ec2types.VpcEndpoint, error) {
		var endpoints []ec2types.VpcEndpoint
		input := &ec2.DescribeVpcEndpointsInput{}
		for {
			page, err := s.ec2Client.DescribeVpcEndpoints(ctx, input)
			if err != nil {
				return nil, err
			}
			endpoints = append(endpoints, page.VpcEndpoints...)
			if page.NextToken == nil {
				return endpoints, nil
			}
			input.NextToken = page.NextToken
		}
	})
}

// GetVpcPeeringConnections lists all VPC peering connections in the region.
func (s *service) GetVpcPeeringConnections(ctx context.Context) []ec2types.VpcPeeringConnection {
	return collect(s.region, "VPC peering connections", func() ([]ec2types.VpcPeeringConnection, error) {
		var peerings []ec2types.VpcPeeringConnection
		input := &ec2.DescribeVpcPeeringConnectionsInput{}
		for {
			page, err := s.ec2Client.DescribeVpcPeeringConnections(ctx, input)
			if err != nil {
				return nil, err
			}
			peerings = append(peerings, page.VpcPeeringConnections...)
			if page.NextToken == nil {
				return peerings, nil
			}
			input.NextToken = page.NextToken
		}
	})
}

// GetLoadBalancers lists all v2 load balancers in the region.
func (s *service) GetLoadBalancers(ctx context.Context) []elbv2types.LoadBalancer {
	return collect(s.region, "load balancers", func() ([]elbv2types.LoadBalancer, error) {
		var balancers []elbv2types.LoadBalancer
		input := &elasticloadbalancingv2.DescribeLoadBalancersInput{}
		for {
			page, err := s.elbv2Client.DescribeLoadBalancers(ctx, input)
			if err != nil {
				return nil, err
			}
			balancers = append(balancers, page.LoadBalancers...)
			if page.NextMarker == nil {
				return balancers, nil
			}
			input.Marker = page.NextMarker
		}
	})
}
