// Package loader parses hosting-environment resource declarations into
// Reference values.
//
// Two declaration formats are supported:
//
//   - XML: container context files declaring <Resource> elements with
//     free-form attributes, in the style of servlet-container context.xml.
//   - YAML: a resources list with a name, type, factory, and an
//     attributes map.
//
// # XML
//
//	<Context>
//	  <Resource name="cassandra/Tracker"
//	            type="casref.Keyspace"
//	            factory="casref.Factory"
//	            hosts="cass1:9042,cass2:9042"
//	            clusterName="Tracker Cluster"
//	            keyspace="tracker"/>
//	</Context>
//
//	refs, err := loader.LoadXML(r)
//
// # YAML
//
//	resources:
//	  - name: cassandra/Tracker
//	    type: casref.Keyspace
//	    factory: casref.Factory
//	    attributes:
//	      hosts: cass1:9042,cass2:9042
//	      clusterName: Tracker Cluster
//	      keyspace: tracker
//
//	refs, err := loader.LoadYAML(r)
//
// The loader only builds references; validation of required attributes
// happens at resolution time in the factory.
package loader
